package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/interview-console/internal/models"
)

func industrySelect(selected ...string) *MultiSelect {
	return NewMultiSelect(MultiSelectConfig{
		Label:       "Industries",
		Options:     []string{models.NoSpecificIndustry, "Fintech", "Healthcare", "E-commerce"},
		Selected:    selected,
		AllowCreate: true,
		Sentinel:    models.NoSpecificIndustry,
	})
}

func TestSentinelSelectionClearsOthers(t *testing.T) {
	m := industrySelect("Fintech", "Healthcare")

	m.Toggle(models.NoSpecificIndustry)

	assert.Equal(t, []string{models.NoSpecificIndustry}, m.Selected())
}

func TestSelectingOtherRemovesSentinel(t *testing.T) {
	m := industrySelect(models.NoSpecificIndustry)

	m.Toggle("Fintech")

	assert.Equal(t, []string{"Fintech"}, m.Selected())
}

func TestToggleRemovesExistingSelection(t *testing.T) {
	m := industrySelect("Fintech", "Healthcare")

	m.Toggle("Fintech")

	assert.Equal(t, []string{"Healthcare"}, m.Selected())
}

func TestCreateRowHiddenWhenTypedMatchesOption(t *testing.T) {
	m := industrySelect()

	m.SetTyped("fintech")

	assert.False(t, m.ShowCreateRow())
}

func TestCreateRowHiddenWhenTypedMatchesSelection(t *testing.T) {
	m := industrySelect()
	m.Toggle("Legal Tech")

	m.SetTyped("legal tech")

	assert.False(t, m.ShowCreateRow())
}

func TestCreateRowShownForNovelText(t *testing.T) {
	m := industrySelect()

	m.SetTyped("Aerospace")

	assert.True(t, m.ShowCreateRow())
}

func TestCreateRowNeverShownWithoutAllowCreate(t *testing.T) {
	m := NewMultiSelect(MultiSelectConfig{
		Options: []string{"Fintech"},
	})

	m.SetTyped("Aerospace")

	assert.False(t, m.ShowCreateRow())
}

func TestEnterCreatesNovelValue(t *testing.T) {
	m := industrySelect()

	m.SetTyped("Aerospace")
	m.Enter()

	assert.Equal(t, []string{"Aerospace"}, m.Selected())
	assert.Empty(t, m.Typed())
}

func TestEnterSelectsCaseInsensitiveMatch(t *testing.T) {
	m := industrySelect()

	m.SetTyped("HEALTHCARE")
	m.Enter()

	assert.Equal(t, []string{"Healthcare"}, m.Selected())
}

func TestEnterIgnoresDuplicateSelection(t *testing.T) {
	m := industrySelect("Healthcare")

	m.SetTyped("healthcare")
	m.Enter()

	assert.Equal(t, []string{"Healthcare"}, m.Selected())
}

func TestEnterCreatedValueRemovesSentinel(t *testing.T) {
	m := industrySelect(models.NoSpecificIndustry)

	m.SetTyped("Aerospace")
	m.Enter()

	assert.Equal(t, []string{"Aerospace"}, m.Selected())
}

func TestBackspaceOnEmptyInputRemovesLastChip(t *testing.T) {
	m := industrySelect("Fintech", "Healthcare")

	m.Backspace()

	assert.Equal(t, []string{"Fintech"}, m.Selected())
}

func TestBackspaceWithTypedTextKeepsChips(t *testing.T) {
	m := industrySelect("Fintech")

	m.SetTyped("He")
	m.Backspace()

	assert.Equal(t, []string{"Fintech"}, m.Selected())
}

func TestEscapeClosesAndClearsTypedText(t *testing.T) {
	m := industrySelect()

	m.SetTyped("Fin")
	m.Escape()

	assert.False(t, m.IsOpen())
	assert.Empty(t, m.Typed())
}

func TestVisibleChipsOverflow(t *testing.T) {
	m := industrySelect("Fintech", "Healthcare", "E-commerce")

	chips, overflow := m.VisibleChips()

	assert.Equal(t, []string{"Fintech", "Healthcare"}, chips)
	assert.Equal(t, 1, overflow)
}

func TestVisibleChipsNoOverflow(t *testing.T) {
	m := industrySelect("Fintech")

	chips, overflow := m.VisibleChips()

	assert.Equal(t, []string{"Fintech"}, chips)
	assert.Zero(t, overflow)
}

func TestFilteredOptionsMatchesCaseInsensitively(t *testing.T) {
	m := industrySelect()

	m.SetTyped("tech")

	assert.Equal(t, []string{"Fintech"}, m.FilteredOptions())
}

func TestSeedingWithSentinelCollapsesSelection(t *testing.T) {
	m := industrySelect("Fintech", models.NoSpecificIndustry, "Healthcare")

	assert.Equal(t, []string{models.NoSpecificIndustry}, m.Selected())
}

func TestSeedingDropsDuplicates(t *testing.T) {
	m := industrySelect("Fintech", "Fintech", "Healthcare")

	assert.Equal(t, []string{"Fintech", "Healthcare"}, m.Selected())
}
