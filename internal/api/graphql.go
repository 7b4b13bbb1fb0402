package api

import (
	"net/http"

	"github.com/boynton/mathbraille"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

var diagnosticType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Diagnostic",
	Fields: graphql.Fields{
		"kind":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"position": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"symbol":   &graphql.Field{Type: graphql.String},
		"message":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var translationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Translation",
	Fields: graphql.Fields{
		"mathml":   &graphql.Field{Type: graphql.String},
		"success":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"partial":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"errors":   &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(diagnosticType))},
		"warnings": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(diagnosticType))},
	},
})

func newSchema(translator *mathbraille.Translator) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"translate": &graphql.Field{
				Type: translationType,
				Args: graphql.FieldConfigArgument{
					"braille": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					src, _ := p.Args["braille"].(string)
					return translationValue(translator.Translate(src)), nil
				},
			},
		},
	})
	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

// translationValue flattens a Result into the maps the default resolvers read.
func translationValue(res *mathbraille.Result) map[string]interface{} {
	errs := make([]interface{}, 0, len(res.Errors))
	for _, e := range res.Errors {
		diag := map[string]interface{}{
			"kind":     e.Kind.String(),
			"position": e.Position,
			"message":  e.Error(),
		}
		if e.Symbol != 0 {
			diag["symbol"] = string(e.Symbol)
		}
		errs = append(errs, diag)
	}
	warnings := make([]interface{}, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, map[string]interface{}{
			"kind":     w.Kind.String(),
			"position": w.Position,
			"message":  w.Message,
		})
	}
	v := map[string]interface{}{
		"success":  res.IsSuccess(),
		"partial":  res.IsPartial(),
		"errors":   errs,
		"warnings": warnings,
	}
	if res.HasOutput() {
		v["mathml"] = res.MathML
	}
	return v
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})
	if len(result.Errors) > 0 {
		s.log.Debug("graphql errors", "count", len(result.Errors), "first", result.Errors[0].Message)
	}
	writeJSON(w, http.StatusOK, result)
}
