// Package domain contains the core radar model.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// CSV/JSON parsing, net/http, or the spreadsheet API. Infra/adapters map
// into/from these types.
package domain
