// Package api exposes the classification engine and the record store over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/moodring/internal/common"
	"github.com/Veraticus/moodring/internal/model"
	"github.com/Veraticus/moodring/internal/service"
)

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// HealthCheck reports that the process is serving.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Analyze classifies the posted text and stores the result.
func Analyze(classifier service.Classifier, store service.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Text is required"})
			return
		}

		result, err := classifier.Classify(c.Request.Context(), req.Text)
		if err != nil {
			slog.Error("failed to classify text", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze text"})
			return
		}

		analysis := model.NewAnalysis(req.Text, result)
		if err := store.SaveAnalysis(c.Request.Context(), analysis); err != nil {
			slog.Error("failed to save analysis", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save analysis"})
			return
		}

		slog.Debug("Stored analysis", "id", analysis.ID, "sentiment", analysis.Sentiment)
		c.JSON(http.StatusCreated, analysis)
	}
}

// ListHistory returns stored records newest first. The optional limit
// query parameter caps the result size.
func ListHistory(store service.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a non-negative integer"})
				return
			}
			limit = parsed
		}

		analyses, err := store.ListAnalyses(c.Request.Context(), limit)
		if err != nil {
			slog.Error("failed to list analyses", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch history"})
			return
		}
		c.JSON(http.StatusOK, analyses)
	}
}

// GetHistory returns a single stored record.
func GetHistory(store service.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		analysis, err := store.GetAnalysis(c.Request.Context(), id)
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
			return
		}
		if err != nil {
			slog.Error("failed to get analysis", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch record"})
			return
		}
		c.JSON(http.StatusOK, analysis)
	}
}

// DeleteHistory removes a stored record.
func DeleteHistory(store service.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := store.DeleteAnalysis(c.Request.Context(), id)
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
			return
		}
		if err != nil {
			slog.Error("failed to delete analysis", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete record"})
			return
		}

		slog.Info("Deleted analysis", "id", id)
		c.JSON(http.StatusOK, gin.H{"message": "Record deleted", "id": id})
	}
}
