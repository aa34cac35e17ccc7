// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/auction-monitor/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Dashboard validates every query expression found in dash.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	exprs := collectExprs(tree, nil)
	if len(exprs) == 0 {
		res.Warnings = append(res.Warnings, "dashboard has no query expressions")
	}
	for _, e := range exprs {
		res.merge(Expr(e, known))
	}
	return res
}

// Rules validates every rule expression in cr. Recording rule outputs must
// themselves be listed in known to be referenced elsewhere.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule without record or alert name", g.Name))
				continue
			}
			sub := Expr(r.Expr, known)
			for _, e := range sub.Errors {
				res.Errors = append(res.Errors, name+": "+e)
			}
			res.Warnings = append(res.Warnings, sub.Warnings...)
		}
	}
	return res
}

// Expr parses a single PromQL expression and checks its metric names.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return res
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})

	sort.Strings(unknown)
	for _, name := range unknown {
		res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %s in %q", name, expr))
	}
	return res
}

// collectExprs walks a decoded JSON tree and returns every string stored
// under an "expr" key.
func collectExprs(node any, acc []string) []string {
	switch v := node.(type) {
	case map[string]any:
		if e, ok := v["expr"].(string); ok && e != "" {
			acc = append(acc, e)
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			acc = collectExprs(v[k], acc)
		}
	case []any:
		for _, item := range v {
			acc = collectExprs(item, acc)
		}
	}
	return acc
}
