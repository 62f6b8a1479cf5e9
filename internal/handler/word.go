package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mhvocab/api/internal/cache"
	"github.com/mhvocab/api/internal/middleware"
	"github.com/mhvocab/api/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WordHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewWordHandler(db *gorm.DB, redisCache *cache.RedisCache) *WordHandler {
	return &WordHandler{db: db, cache: redisCache}
}

type CreateWordRequest struct {
	Collection       string   `json:"collection"`
	Word             string   `json:"word"`
	Definition       string   `json:"definition"`
	Pronunciation    string   `json:"pronunciation"`
	PartOfSpeech     string   `json:"partOfSpeech"`
	Meaning          string   `json:"meaning"`
	Image            string   `json:"image"`
	Note             string   `json:"note"`
	ExampleSentences []string `json:"exampleSentences"`
	Synonyms         []string `json:"synonyms"`
	Antonyms         []string `json:"antonyms"`
}

// List returns a collection's words, most recent first. Responses are cached
// in Redis per collection; cache failures fall through to the database.
func (h *WordHandler) List(c *gin.Context) {
	collectionID, err := strconv.ParseInt(c.Param("collectionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid collection ID"})
		return
	}

	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), cache.WordListKey(collectionID)); err == nil {
			middleware.RecordWordList(true)
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}
	middleware.RecordWordList(false)

	words := []model.Word{}
	if err := h.db.Where("collection_id = ?", collectionID).Order("id DESC").Find(&words).Error; err != nil {
		log.Printf("Failed to list words: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list words"})
		return
	}

	if h.cache != nil {
		if body, err := json.Marshal(words); err == nil {
			if err := h.cache.Set(c.Request.Context(), cache.WordListKey(collectionID), body); err != nil {
				log.Printf("Warning: Failed to cache word list: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, words)
}

func (h *WordHandler) Create(c *gin.Context) {
	var req CreateWordRequest
	c.ShouldBindJSON(&req)

	if req.Word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Word is required"})
		return
	}
	if req.Definition == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Definition is required"})
		return
	}
	if req.PartOfSpeech == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Part of speech is required"})
		return
	}
	if len(req.ExampleSentences) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Example sentences are required"})
		return
	}
	collectionID, err := strconv.ParseInt(req.Collection, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid collection ID"})
		return
	}

	word := model.Word{
		CollectionID:     collectionID,
		Word:             req.Word,
		Definition:       req.Definition,
		Pronunciation:    req.Pronunciation,
		PartOfSpeech:     req.PartOfSpeech,
		Meaning:          req.Meaning,
		Image:            req.Image,
		Note:             req.Note,
		ExampleSentences: toJSONArray(req.ExampleSentences),
		Synonyms:         toJSONArray(req.Synonyms),
		Antonyms:         toJSONArray(req.Antonyms),
	}
	if err := h.db.Create(&word).Error; err != nil {
		log.Printf("Failed to create word: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create word"})
		return
	}

	if h.cache != nil {
		if err := h.cache.Delete(c.Request.Context(), cache.WordListKey(collectionID)); err != nil {
			log.Printf("Warning: Failed to invalidate word list cache: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": word.ID})
}

func toJSONArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}
