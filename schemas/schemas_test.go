package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/trail-guidebook/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"seed.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSeedSchema_EmbeddedMatchesFile(t *testing.T) {
	data, err := os.ReadFile("seed.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), Seed)
}

func TestSeedSchema_AcceptsMinimalDocument(t *testing.T) {
	doc := `{
		"intros": [],
		"categories": [],
		"case_studies": [],
		"orgs": [],
		"featured": [],
		"chapters": []
	}`
	assert.NoError(t, schemas.ValidateJSONString(Seed, doc))
}

func TestSeedSchema_RejectsUnknownLinkKind(t *testing.T) {
	doc := `{
		"intros": [],
		"categories": [],
		"case_studies": [],
		"orgs": [],
		"featured": [],
		"chapters": [
			{"title": "如何參與", "highlights": [{"title": "x", "link": {"kind": "website"}}]}
		]
	}`
	err := schemas.ValidateJSONString(Seed, doc)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.NotEmpty(t, validationErr.Errors)
}

func TestSeedSchema_RejectsCaseStudyWithoutMethods(t *testing.T) {
	doc := `{
		"intros": [],
		"categories": [],
		"case_studies": [
			{"name": "米棧古道", "location": "花蓮縣壽豐鄉", "methods": [], "notes": "n", "image": "米棧"}
		],
		"orgs": [],
		"featured": [],
		"chapters": []
	}`
	require.Error(t, schemas.ValidateJSONString(Seed, doc))
}
