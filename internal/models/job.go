package models

import (
	"fmt"
	"strings"
)

type (
	Urgency       string // Срочность заказа
	JobStatus     string // Статус заказа
	UrgencyFilter string // Фильтр по срочности
)

const (
	LowUrgency    Urgency = "low"
	MediumUrgency Urgency = "medium"
	HighUrgency   Urgency = "high"

	OpenJob      JobStatus = "open"      // Заказ открыт для предложений
	AssignedJob  JobStatus = "assigned"  // Заказ назначен водителю
	CompletedJob JobStatus = "completed" // Заказ выполнен

	AllUrgencies UrgencyFilter = "all"
)

// Job представляет модель заказа на эвакуацию.
type Job struct {
	ID                string    `json:"id" yaml:"id"`
	PickupLocation    string    `json:"pickupLocation" yaml:"pickupLocation"`
	DropoffLocation   string    `json:"dropoffLocation" yaml:"dropoffLocation"`
	VehicleType       string    `json:"vehicleType" yaml:"vehicleType"`
	DateTime          string    `json:"dateTime" yaml:"dateTime"`
	Urgency           Urgency   `json:"urgency" yaml:"urgency"`
	Distance          string    `json:"distance" yaml:"distance"`
	EstimatedDuration string    `json:"estimatedDuration" yaml:"estimatedDuration"`
	PhotoURL          string    `json:"photoUrl,omitempty" yaml:"photoUrl,omitempty"`
	Status            JobStatus `json:"status" yaml:"status"`
}

// JobCriteria описывает параметры выборки заказов.
type JobCriteria struct {
	Urgency  UrgencyFilter
	Query    string
	Statuses []JobStatus
	Limit    int // 0 - без ограничения
	Offset   int
}

// Valid проверяет, что срочность входит в допустимый набор.
func (u Urgency) Valid() bool {
	switch u {
	case LowUrgency, MediumUrgency, HighUrgency:
		return true
	}
	return false
}

func (s JobStatus) Valid() bool {
	switch s {
	case OpenJob, AssignedJob, CompletedJob:
		return true
	}
	return false
}

// ParseUrgencyFilter разбирает значение фильтра. Пустая строка означает "all".
func ParseUrgencyFilter(s string) (UrgencyFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || UrgencyFilter(s) == AllUrgencies {
		return AllUrgencies, nil
	}
	if !Urgency(s).Valid() {
		return "", fmt.Errorf("invalid urgency filter: %s", s)
	}
	return UrgencyFilter(s), nil
}

// ParseJobStatuses разбирает список статусов, переданный через запятую.
func ParseJobStatuses(values []string) ([]JobStatus, error) {
	var statuses []JobStatus
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			status := JobStatus(part)
			if !status.Valid() {
				return nil, fmt.Errorf("invalid job status: %s", part)
			}
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

// JobListResponse - ответ на запрос списка заказов.
type JobListResponse struct {
	Jobs      []Job  `json:"jobs"`
	Total     int    `json:"total"` // совпадения до пагинации
	NoMatches bool   `json:"noMatches"`
	Message   string `json:"message,omitempty"`
	Hint      string `json:"hint,omitempty"`
}
