package exercises

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/otel/attribute"
)

const defaultListLimit = 20

// dynamodbAPI is the minimal DynamoDB interface required by Repo.
// Defined here for testability.
type dynamodbAPI interface {
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type ListParams struct {
	Search      string
	MuscleGroup string
	Equipment   string
	Difficulty  string
	Limit       int
}

type Repo struct {
	api       dynamodbAPI
	tableName string
}

func NewRepo(api dynamodbAPI, tableName string) (*Repo, error) {
	if api == nil {
		return nil, errors.New("exercises repo: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("exercises repo: table name must not be empty")
	}
	return &Repo{
		api:       api,
		tableName: tableName,
	}, nil
}

// List scans the whole library and filters in memory. The table holds
// a few hundred items at most, so a filtered scan beats maintaining
// secondary indexes for every filter combination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Limit <= 0 {
		params.Limit = defaultListLimit
	}
	span.SetAttributes(attribute.Int("limit", params.Limit))

	var items []Exercise
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	for {
		out, err := r.api.Scan(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("scan exercises: %w", err)
		}

		var page []Exercise
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal exercises: %w", err)
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	filtered := make([]Exercise, 0, len(items))
	for _, ex := range items {
		if !matches(ex, params) {
			continue
		}
		filtered = append(filtered, ex)
		if len(filtered) == params.Limit {
			break
		}
	}

	return filtered, nil
}

func matches(ex Exercise, params ListParams) bool {
	if params.Search != "" {
		search := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(ex.Name), search) &&
			!strings.Contains(strings.ToLower(ex.Description), search) {
			return false
		}
	}
	if params.MuscleGroup != "" && !slices.Contains(ex.MuscleGroups, params.MuscleGroup) {
		return false
	}
	if params.Equipment != "" && !slices.Contains(ex.Equipment, params.Equipment) {
		return false
	}
	if params.Difficulty != "" && ex.Difficulty != params.Difficulty {
		return false
	}
	return true
}
