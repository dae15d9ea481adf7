package listing

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"alumni/internal/entity"
)

type AlumniQuery struct {
	Search string
	Year   int
}

// ParseAlumniQuery ignores a year that is not a number.
func ParseAlumniQuery(v url.Values) AlumniQuery {
	q := AlumniQuery{Search: strings.TrimSpace(v.Get("q"))}
	if year, err := strconv.Atoi(strings.TrimSpace(v.Get("year"))); err == nil {
		q.Year = year
	}
	return q
}

func FilterAlumni(alumni []entity.Alumnus, q AlumniQuery) []entity.Alumnus {
	out := make([]entity.Alumnus, 0, len(alumni))
	for _, a := range alumni {
		if q.Year != 0 && a.GraduationYear != q.Year {
			continue
		}
		if q.Search != "" && !containsFold(a.Name, q.Search) && !containsFold(a.DegreeProgram, q.Search) &&
			!containsFold(a.Company, q.Search) && !containsFold(a.City, q.Search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GraduationYears lists the distinct years, newest first.
func GraduationYears(alumni []entity.Alumnus) []int {
	seen := map[int]bool{}
	var years []int
	for _, a := range alumni {
		if !seen[a.GraduationYear] {
			seen[a.GraduationYear] = true
			years = append(years, a.GraduationYear)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
