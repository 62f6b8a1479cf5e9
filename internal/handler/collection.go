package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mhvocab/api/internal/model"
	"gorm.io/gorm"
)

type CollectionHandler struct {
	db *gorm.DB
}

func NewCollectionHandler(db *gorm.DB) *CollectionHandler {
	return &CollectionHandler{db: db}
}

type CreateCollectionRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Date     string `json:"date"`
}

// List returns a document's collections in insertion order.
func (h *CollectionHandler) List(c *gin.Context) {
	documentID, err := strconv.ParseInt(c.Param("documentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid document ID"})
		return
	}

	collections := []model.Collection{}
	if err := h.db.Where("document_id = ?", documentID).Order("id ASC").Find(&collections).Error; err != nil {
		log.Printf("Failed to list collections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list collections"})
		return
	}

	c.JSON(http.StatusOK, collections)
}

func (h *CollectionHandler) Create(c *gin.Context) {
	var req CreateCollectionRequest
	c.ShouldBindJSON(&req)

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Collection name is required"})
		return
	}
	if req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Collection date is required"})
		return
	}
	documentID, err := strconv.ParseInt(req.Document, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid document ID"})
		return
	}

	collection := model.Collection{
		Name:       req.Name,
		DocumentID: documentID,
		Date:       req.Date,
	}
	if err := h.db.Create(&collection).Error; err != nil {
		log.Printf("Failed to create collection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": collection.ID})
}
