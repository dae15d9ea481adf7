package listing

import (
	"net/url"
	"strings"

	"alumni/internal/entity"
)

// JobCategories are the chips above the job board.
var JobCategories = []string{"all", "technology", "marketing", "finance"}

type JobQuery struct {
	Category string
	Search   string
}

func ParseJobQuery(v url.Values) JobQuery {
	q := JobQuery{
		Category: strings.ToLower(strings.TrimSpace(v.Get("category"))),
		Search:   strings.TrimSpace(v.Get("q")),
	}
	if q.Category == "" {
		q.Category = "all"
	}
	return q
}

func (q JobQuery) Values() url.Values {
	v := url.Values{}
	if q.Category != "" && q.Category != "all" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	return v
}

func FilterJobs(jobs []entity.Job, q JobQuery) []entity.Job {
	out := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		if q.Category != "" && !strings.EqualFold(q.Category, "all") && !strings.EqualFold(j.Category, q.Category) {
			continue
		}
		if q.Search != "" && !containsFold(j.Title, q.Search) && !containsFold(j.Company, q.Search) && !containsFold(j.Location, q.Search) {
			continue
		}
		out = append(out, j)
	}
	return out
}
