package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/senyabanana/towbid-service/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxPageLimit - максимальный размер страницы в списках.
const MaxPageLimit = 100

// SendErrorResponse отправляет ошибку в формате JSON
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errorResponse := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
	SendJSON(w, statusCode, errorResponse)
}

// SendJSON отправляет ответ в формате JSON
func SendJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}

// ParseLimitOffset обрабатывает limit и offset. Пустой limit означает "без ограничения" (0).
func ParseLimitOffset(limitStr, offsetStr string) (int, int, error) {
	var limit, offset int
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > MaxPageLimit {
			return 0, 0, fmt.Errorf("invalid limit parameter, must be a positive integer [1:%d]", MaxPageLimit)
		}
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset parameter, must be a non-negative integer")
		}
	}

	return limit, offset, nil
}

// CheckJobExists проверяет, существует ли заказ
func CheckJobExists(ctx context.Context, dbPool *pgxpool.Pool, jobId string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM job WHERE id = $1)`
	err := dbPool.QueryRow(ctx, query, jobId).Scan(&exists)
	return exists, err
}
