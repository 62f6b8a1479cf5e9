package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mhvocab/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordBody(word string) map[string]any {
	return map[string]any{
		"collection":       "1",
		"word":             word,
		"definition":       "a definition",
		"partOfSpeech":     "noun",
		"exampleSentences": []string{"An example sentence."},
	}
}

func createWord(t *testing.T, r *gin.Engine, word string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/words/create-word", wordBody(word))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateWord(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	body := wordBody("ephemeral")
	body["synonyms"] = []string{"fleeting", "transient"}
	body["note"] = "from Greek"

	w := doJSON(r, http.MethodPost, "/api/words/create-word", body)
	require.Equal(t, http.StatusOK, w.Code)

	ack := decodeBody(t, w)
	assert.Equal(t, true, ack["acknowledged"])
	assert.NotZero(t, ack["insertedId"])

	var stored model.Word
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "ephemeral", stored.Word)
	assert.Equal(t, int64(1), stored.CollectionID)
	assert.JSONEq(t, `["fleeting","transient"]`, string(stored.Synonyms))
	// Unset optional fields default to empty
	assert.Empty(t, stored.Pronunciation)
	assert.JSONEq(t, `[]`, string(stored.Antonyms))
}

func TestCreateWord_MissingRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	for _, field := range []string{"word", "definition", "partOfSpeech", "exampleSentences"} {
		body := wordBody("ephemeral")
		delete(body, field)
		w := doJSON(r, http.MethodPost, "/api/words/create-word", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
	}

	body := wordBody("ephemeral")
	body["collection"] = "not-an-id"
	w := doJSON(r, http.MethodPost, "/api/words/create-word", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was inserted by any rejected request
	var count int64
	db.Model(&model.Word{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListWords_DescendingOrder(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	for _, word := range []string{"alpha", "beta", "gamma"} {
		createWord(t, r, word)
	}

	w := doJSON(r, http.MethodGet, "/api/words/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var words []map[string]any
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &words))
	require.Len(t, words, 3)
	assert.Equal(t, "gamma", words[0]["word"])
	assert.Equal(t, "beta", words[1]["word"])
	assert.Equal(t, "alpha", words[2]["word"])
}

func TestListWords_MalformedID(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	w := doJSON(r, http.MethodGet, "/api/words/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWords_Empty(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	w := doJSON(r, http.MethodGet, "/api/words/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
