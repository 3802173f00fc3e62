// Package filter содержит предикаты поиска и фильтрации заказов.
package filter

import (
	"strings"

	"github.com/senyabanana/towbid-service/internal/models"
)

// Jobs возвращает заказы, подходящие под фильтр срочности и текстовый запрос,
// в исходном порядке. Исходный срез не изменяется.
func Jobs(jobs []models.Job, urgency models.UrgencyFilter, query string) []models.Job {
	return Apply(jobs, models.JobCriteria{Urgency: urgency, Query: query})
}

// Apply фильтрует заказы по всем условиям criteria, включая статусы и пагинацию.
func Apply(jobs []models.Job, criteria models.JobCriteria) []models.Job {
	return Page(Match(jobs, criteria), criteria.Limit, criteria.Offset)
}

// Match возвращает все подходящие заказы без учёта пагинации.
func Match(jobs []models.Job, criteria models.JobCriteria) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !MatchesUrgency(job, criteria.Urgency) {
			continue
		}
		if !MatchesQuery(job, criteria.Query) {
			continue
		}
		if !MatchesStatus(job, criteria.Statuses) {
			continue
		}
		result = append(result, job)
	}
	return result
}

// MatchesUrgency проходит, если фильтр "all" (или пуст) либо совпадает со срочностью заказа.
func MatchesUrgency(job models.Job, urgency models.UrgencyFilter) bool {
	if urgency == "" || urgency == models.AllUrgencies {
		return true
	}
	return models.Urgency(urgency) == job.Urgency
}

// MatchesQuery проходит, если запрос пуст или без учёта регистра входит
// в адрес подачи, адрес назначения или тип транспорта.
func MatchesQuery(job models.Job, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(job.PickupLocation), q) ||
		strings.Contains(strings.ToLower(job.DropoffLocation), q) ||
		strings.Contains(strings.ToLower(job.VehicleType), q)
}

// MatchesStatus проходит, если набор статусов пуст или содержит статус заказа.
func MatchesStatus(job models.Job, statuses []models.JobStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == job.Status {
			return true
		}
	}
	return false
}

// Page отрезает страницу от уже отфильтрованного списка. limit 0 - без ограничения.
func Page(jobs []models.Job, limit, offset int) []models.Job {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(jobs) {
		return jobs[:0]
	}
	jobs = jobs[offset:]
	if limit > 0 && limit < len(jobs) {
		jobs = jobs[:limit]
	}
	return jobs
}
