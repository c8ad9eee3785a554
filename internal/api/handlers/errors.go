package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// 查詢參數中日期的格式
const dateLayout = "2006-01-02"

// fieldError 描述單一欄位的驗證錯誤
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationError 將參數綁定失敗轉換為 422 回應，盡量保留欄位層級的細節
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{
				Field:   fe.Field(),
				Message: "failed on rule: " + fe.Tag(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// dateError 回應日期參數格式錯誤
func dateError(c *gin.Context, field string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []fieldError{{
		Field:   field,
		Message: "must be a date in YYYY-MM-DD format",
	}}})
}

// queryError 回應資料庫查詢失敗，不附帶內部錯誤細節
func queryError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Query failed"})
}

// parseIDParam 解析路徑中的整數主鍵，格式錯誤時直接回應 422
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []fieldError{{
			Field:   name,
			Message: "must be an integer",
		}}})
		return 0, false
	}
	return uint(id), true
}

// parseDateParam 解析 YYYY-MM-DD 格式的日期參數，空字串視為未提供
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// optionalString 將空字串視為未提供的過濾條件
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
