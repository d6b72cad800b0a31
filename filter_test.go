package docinv_test

import (
	"testing"

	"github.com/fwojciec/docinv"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("empty term set matches everything", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docinv.Matches("anything", nil))
		assert.True(t, docinv.Matches("", nil))
	})

	t.Run("matches case-insensitive substring", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docinv.Matches("Administer", []string{"admin"}))
		assert.True(t, docinv.Matches("administer", []string{"ADMIN"}))
	})

	t.Run("rejects non-substring", func(t *testing.T) {
		t.Parallel()

		assert.False(t, docinv.Matches("Administer", []string{"zz"}))
	})

	t.Run("terms combine with OR", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docinv.Matches("Deploy models", []string{"zz", "deploy"}))
		assert.False(t, docinv.Matches("Deploy models", []string{"zz", "yy"}))
	})
}

func TestFilterSpec_Dimensions(t *testing.T) {
	t.Parallel()

	t.Run("dimensions combine with AND", func(t *testing.T) {
		t.Parallel()

		spec := docinv.FilterSpec{
			Categories: []string{"Deploy"},
			Chapters:   []string{"deploying"},
		}

		// Chapter matches but category does not.
		assert.False(t, spec.MatchCategory("Administer"))

		// Category matches; the chapter dimension decides per heading.
		assert.True(t, spec.MatchCategory("Deploy"))
		headings := []docinv.Heading{
			{Level: docinv.LevelChapter, Text: "Chapter 1. Overview", Anchor: "overview"},
			{Level: docinv.LevelChapter, Text: "Chapter 2. Deploying models", Anchor: "deploying-models"},
		}
		kept := spec.FilterHeadings(headings)
		assert.Len(t, kept, 1)
		assert.Equal(t, "Chapter 2. Deploying models", kept[0].Text)
	})

	t.Run("empty spec places no constraint", func(t *testing.T) {
		t.Parallel()

		spec := docinv.FilterSpec{}

		assert.True(t, spec.Empty())
		assert.True(t, spec.MatchCategory("anything"))
		assert.True(t, spec.MatchTitle("anything"))
	})
}

func TestFilterSpec_FilterHeadings(t *testing.T) {
	t.Parallel()

	t.Run("no chapter terms keeps everything", func(t *testing.T) {
		t.Parallel()

		headings := []docinv.Heading{
			{Level: docinv.LevelChapter, Text: "Chapter 1. Overview", Anchor: "overview"},
			{Level: docinv.LevelSection, Text: "1.1. Workflow", Anchor: "workflow"},
		}

		kept := docinv.FilterSpec{}.FilterHeadings(headings)

		assert.Equal(t, headings, kept)
	})

	t.Run("excluded chapter removes its nested headings as a block", func(t *testing.T) {
		t.Parallel()

		spec := docinv.FilterSpec{Chapters: []string{"deploying"}}
		headings := []docinv.Heading{
			{Level: docinv.LevelChapter, Text: "Chapter 1. Overview", Anchor: "overview"},
			{Level: docinv.LevelSection, Text: "1.1. Workflow", Anchor: "workflow"},
			{Level: docinv.LevelChapter, Text: "Chapter 2. Deploying models", Anchor: "deploying-models"},
			{Level: docinv.LevelSection, Text: "2.1. Serving runtimes", Anchor: "serving-runtimes"},
			{Level: docinv.LevelSubsection, Text: "2.1.1. Model servers", Anchor: "model-servers"},
			{Level: docinv.LevelChapter, Text: "Chapter 3. Monitoring", Anchor: "monitoring"},
			{Level: docinv.LevelSection, Text: "3.1. Metrics", Anchor: "metrics"},
		}

		kept := spec.FilterHeadings(headings)

		assert.Equal(t, []docinv.Heading{
			{Level: docinv.LevelChapter, Text: "Chapter 2. Deploying models", Anchor: "deploying-models"},
			{Level: docinv.LevelSection, Text: "2.1. Serving runtimes", Anchor: "serving-runtimes"},
			{Level: docinv.LevelSubsection, Text: "2.1.1. Model servers", Anchor: "model-servers"},
		}, kept)
	})

	t.Run("level-1 heading is guide identity and never filtered", func(t *testing.T) {
		t.Parallel()

		spec := docinv.FilterSpec{Chapters: []string{"deploying"}}
		headings := []docinv.Heading{
			{Level: docinv.LevelTitle, Text: "Serving models", Anchor: "serving-models"},
			{Level: docinv.LevelChapter, Text: "Chapter 1. Overview", Anchor: "overview"},
		}

		kept := spec.FilterHeadings(headings)

		assert.Equal(t, []docinv.Heading{
			{Level: docinv.LevelTitle, Text: "Serving models", Anchor: "serving-models"},
		}, kept)
	})

	t.Run("sections before the first chapter are excluded", func(t *testing.T) {
		t.Parallel()

		spec := docinv.FilterSpec{Chapters: []string{"overview"}}
		headings := []docinv.Heading{
			{Level: docinv.LevelSection, Text: "Orphan section", Anchor: "orphan"},
			{Level: docinv.LevelChapter, Text: "Chapter 1. Overview", Anchor: "overview"},
		}

		kept := spec.FilterHeadings(headings)

		assert.Equal(t, []docinv.Heading{
			{Level: docinv.LevelChapter, Text: "Chapter 1. Overview", Anchor: "overview"},
		}, kept)
	})
}
