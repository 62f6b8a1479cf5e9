package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mhvocab/api/internal/model"
	"gorm.io/gorm"
)

type DocumentHandler struct {
	db *gorm.DB
}

func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{db: db}
}

type CreateDocumentRequest struct {
	Name string `json:"name"`
	User string `json:"user"`
}

// List returns all documents owned by a user.
func (h *DocumentHandler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	documents := []model.Document{}
	if err := h.db.Where("user_id = ?", userID).Find(&documents).Error; err != nil {
		log.Printf("Failed to list documents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// Create inserts a document for the referenced user and returns the insert
// acknowledgment with the generated id.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req CreateDocumentRequest
	c.ShouldBindJSON(&req)

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Document name is required"})
		return
	}
	userID, err := strconv.ParseInt(req.User, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	document := model.Document{
		Name:   req.Name,
		UserID: userID,
	}
	if err := h.db.Create(&document).Error; err != nil {
		log.Printf("Failed to create document: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": document.ID})
}
