package repos

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"shoply/internal/apperr"
)

// ListParams carries a raw pagination/sort/search request.
// PageNumber and PageSize must already be resolved to positive values by the
// caller; Sort is "field" or "field:direction", Search is "field:pattern".
type ListParams struct {
	PageNumber int
	PageSize   int
	Sort       string
	Search     string
}

// ListSpec describes one listable resource: its table, the projected columns
// and the whitelist of fields that may be sorted or searched. One spec per
// resource replaces the per-resource query code the handlers used to carry.
type ListSpec struct {
	Table       string
	Columns     []string
	Fields      map[string]bool
	DefaultSort string
}

// orderClause resolves the sort token against the whitelist. The id column is
// appended as a tiebreak so pages are stable across identical field values.
func (s ListSpec) orderClause(sort string) (string, error) {
	field, dir := s.DefaultSort, "ASC"
	if sort != "" {
		parts := strings.SplitN(sort, ":", 2)
		field = parts[0]
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
				dir = "ASC"
			case "desc":
				dir = "DESC"
			default:
				return "", apperr.New(apperr.Validation, fmt.Sprintf("unknown sort direction %q", parts[1]))
			}
		}
	}
	if !s.Fields[field] {
		return "", apperr.New(apperr.Validation, fmt.Sprintf("cannot sort by %q", field))
	}
	return fmt.Sprintf("%s %s, id ASC", field, dir), nil
}

// searchClause turns "field:pattern" into a case-insensitive substring match.
// An empty search applies no filter; search is independent of sort.
func (s ListSpec) searchClause(search string) (string, []any, error) {
	if search == "" {
		return "", nil, nil
	}
	parts := strings.SplitN(search, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", nil, apperr.New(apperr.Validation, "search must be of the form field:pattern")
	}
	if !s.Fields[parts[0]] {
		return "", nil, apperr.New(apperr.Validation, fmt.Sprintf("cannot search by %q", parts[0]))
	}
	pat := "%" + escapeLike(strings.ToLower(parts[1])) + "%"
	return fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, parts[0]), []any{pat}, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Count returns the number of records matching the search filter.
func Count(db *sqlx.DB, spec ListSpec, search string) (int, error) {
	where, args, err := spec.searchClause(search)
	if err != nil {
		return 0, err
	}
	q := "SELECT COUNT(*) FROM " + spec.Table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	if err := db.Get(&n, q, args...); err != nil {
		return 0, err
	}
	return n, nil
}

// List runs the paginated, filtered, sorted projection query. Read-only.
func List[T any](db *sqlx.DB, spec ListSpec, p ListParams) ([]T, error) {
	order, err := spec.orderClause(p.Sort)
	if err != nil {
		return nil, err
	}
	where, args, err := spec.searchClause(p.Search)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(spec.Columns, ", "), spec.Table)
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY " + order + " LIMIT ? OFFSET ?"
	args = append(args, p.PageSize, (p.PageNumber-1)*p.PageSize)

	out := []T{}
	if err := db.Select(&out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}
