package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lazapee/internal/api"
	"lazapee/internal/forms"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"state": "error", "error": "internal server error"})
	}
}

func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				fields[field] = fmt.Sprintf("%s is required", field)
			default:
				fields[field] = fmt.Sprintf("%s is invalid", field)
			}
		}
		respondFieldErrors(c, fields)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"state": "error", "error": "invalid body"})
}

func respondFieldErrors(c *gin.Context, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, key := range keys {
		messages = append(messages, fields[key])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"state":  "error",
		"error":  strings.Join(messages, "; "),
		"fields": fields,
	})
}

// respondBackendError turns a failed backend call into an error view state.
// Backend rejections pass their status and message through verbatim;
// transport failures become 502 with the page's fallback message.
func respondBackendError(c *gin.Context, area string, err error, fallback string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		log.Printf("[%s] [ERROR] backend rejected request (%d): %s", area, apiErr.Status, apiErr.Error())
		payload := gin.H{"state": "error", "error": apiErr.Error()}
		if len(apiErr.Fields) > 0 {
			payload["fields"] = apiErr.Fields
		}
		c.JSON(apiErr.Status, payload)
		return
	}

	log.Printf("[%s] [ERROR] backend unreachable: %v", area, err)
	c.JSON(http.StatusBadGateway, gin.H{"state": "error", "error": fallback})
}

func respondRedirect(c *gin.Context, path string) {
	c.JSON(http.StatusOK, gin.H{"redirect": path})
}

// acquireSubmit enforces one in-flight submission per form key.
func acquireSubmit(c *gin.Context, guard *forms.Guard, key string) bool {
	if guard.Acquire(key) {
		return true
	}
	c.JSON(http.StatusConflict, gin.H{"state": "error", "error": "submission already in progress"})
	return false
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"state": "error", "error": fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return id, true
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
