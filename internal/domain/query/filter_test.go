package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTranslator = Translator{
	Fields: FieldMap{
		"name":           "name",
		"gender":         "gender",
		"area":           "area_id",
		"submissionDate": "submission_date",
		"gte":            "gte", // a field that happens to be named like an operator
		"id":             "id",
	},
	DefaultSort:  "submission_date DESC",
	AlwaysSelect: []string{"id"},
}

func TestTranslateEquality(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{"gender": {"Male"}})
	require.NoError(t, err)
	require.Len(t, spec.Conditions, 1)

	assert.Equal(t, Condition{Column: "gender", Op: OpEq, Value: "Male"}, spec.Conditions[0])
}

func TestTranslateComparisonOperators(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{
		"submissionDate[gte]": {"2024-01-01"},
		"submissionDate[lt]":  {"2024-02-01"},
	})
	require.NoError(t, err)
	require.Len(t, spec.Conditions, 2)

	// keys are processed in sorted order
	assert.Equal(t, Condition{Column: "submission_date", Op: OpGte, Value: "2024-01-01"}, spec.Conditions[0])
	assert.Equal(t, Condition{Column: "submission_date", Op: OpLt, Value: "2024-02-01"}, spec.Conditions[1])
}

func TestTranslateInOperatorSplitsValues(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{"area[in]": {"1,2,3"}})
	require.NoError(t, err)
	require.Len(t, spec.Conditions, 1)

	assert.Equal(t, OpIn, spec.Conditions[0].Op)
	assert.Equal(t, []string{"1", "2", "3"}, spec.Conditions[0].Value)
}

func TestTranslateFieldNamedLikeOperator(t *testing.T) {
	// a bare field whose name matches an operator token is plain equality
	spec, err := testTranslator.Translate(url.Values{"gte": {"5"}})
	require.NoError(t, err)
	require.Len(t, spec.Conditions, 1)

	assert.Equal(t, OpEq, spec.Conditions[0].Op)
	assert.Equal(t, "gte", spec.Conditions[0].Column)
}

func TestTranslateRejectsUnknownOperator(t *testing.T) {
	_, err := testTranslator.Translate(url.Values{"name[like]": {"foo"}})
	assert.Error(t, err)
}

func TestTranslateRejectsUnknownField(t *testing.T) {
	_, err := testTranslator.Translate(url.Values{"password": {"x"}})
	assert.Error(t, err)
}

func TestTranslateStripsReservedKeys(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{
		"page":   {"2"},
		"limit":  {"10"},
		"select": {"name"},
		"sort":   {"-name"},
		"gender": {"Female"},
	})
	require.NoError(t, err)
	require.Len(t, spec.Conditions, 1)
	assert.Equal(t, "gender", spec.Conditions[0].Column)
}

func TestTranslateSelectKeepsIdentityColumns(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{"select": {"name,gender"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "gender", "id"}, spec.Columns)
}

func TestTranslateSelectRejectsUnknownField(t *testing.T) {
	_, err := testTranslator.Translate(url.Values{"select": {"password"}})
	assert.Error(t, err)
}

func TestTranslateSelectDeduplicates(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{"select": {"id,name,id"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, spec.Columns)
}

func TestTranslateSortDirections(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{"sort": {"name,-submissionDate"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"name ASC", "submission_date DESC"}, spec.Orders)
}

func TestTranslateDefaultSort(t *testing.T) {
	spec, err := testTranslator.Translate(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, []string{"submission_date DESC"}, spec.Orders)
}

func TestTranslateSortRejectsUnknownField(t *testing.T) {
	_, err := testTranslator.Translate(url.Values{"sort": {"password"}})
	assert.Error(t, err)
}

func TestSplitOperator(t *testing.T) {
	cases := []struct {
		key   string
		field string
		op    string
	}{
		{"age[gte]", "age", "gte"},
		{"name", "name", ""},
		{"gte", "gte", ""},
		{"[gte]", "[gte]", ""}, // no field part, treated as a literal key
		{"age[gte", "age[gte", ""},
	}
	for _, tc := range cases {
		field, op := splitOperator(tc.key)
		assert.Equal(t, tc.field, field, tc.key)
		assert.Equal(t, tc.op, op, tc.key)
	}
}
