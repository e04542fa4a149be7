package postgrest

import "net/url"

// Query describes a select against one table. Filters encode as
// column=op.value query parameters, the way the backend expects them.
type Query struct {
	Table   string
	Columns string // defaults to *
	filters []filter
	order   string
}

type filter struct {
	column string
	op     string
	value  string
}

// From starts a query against table.
func From(table string) Query {
	return Query{Table: table}
}

// Select sets the selected columns.
func (q Query) Select(columns string) Query {
	q.Columns = columns
	return q
}

// Eq adds an equality filter.
func (q Query) Eq(column, value string) Query {
	q.filters = append(q.filters, filter{column, "eq", value})
	return q
}

// Gte adds an inclusive lower-bound filter.
func (q Query) Gte(column, value string) Query {
	q.filters = append(q.filters, filter{column, "gte", value})
	return q
}

// Lt adds an exclusive upper-bound filter.
func (q Query) Lt(column, value string) Query {
	q.filters = append(q.filters, filter{column, "lt", value})
	return q
}

// OrderAsc sorts results by column, ascending.
func (q Query) OrderAsc(column string) Query {
	q.order = column + ".asc"
	return q
}

// Values encodes the query as URL parameters.
func (q Query) Values() url.Values {
	v := url.Values{}

	columns := q.Columns
	if columns == "" {
		columns = "*"
	}
	v.Set("select", columns)

	// Add, not Set: a column can carry several filters (e.g. a gte/lt window).
	for _, f := range q.filters {
		v.Add(f.column, f.op+"."+f.value)
	}
	if q.order != "" {
		v.Set("order", q.order)
	}
	return v
}
