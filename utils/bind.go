package utils

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
)

// BindStrict decodes a JSON request body into obj and rejects bodies that
// carry fields the target struct does not declare. Historical clients posted
// the same resources under several field spellings; only the canonical
// schema is accepted now. Gin's ShouldBindJSON silently drops unknown
// fields, which is why this goes through encoding/json directly.
func BindStrict(c *gin.Context, obj interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
