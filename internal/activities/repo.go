package activities

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var ErrActivityNotFound = errors.New("activity not found")

// dynamodbAPI is the minimal DynamoDB interface required by Repo.
// Defined here for testability.
type dynamodbAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type ListParams struct {
	UserID int
	From   *time.Time
	To     *time.Time
}

type Repo struct {
	api       dynamodbAPI
	tableName string
}

func NewRepo(api dynamodbAPI, tableName string) (*Repo, error) {
	if api == nil {
		return nil, errors.New("activities repo: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("activities repo: table name must not be empty")
	}
	return &Repo{
		api:       api,
		tableName: tableName,
	}, nil
}

func (r *Repo) Add(ctx context.Context, activity Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("activity.id", activity.ID))

	item, err := attributevalue.MarshalMap(activity)
	if err != nil {
		return nil, fmt.Errorf("marshal activity: %w", err)
	}

	if _, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return nil, fmt.Errorf("put activity: %w", err)
	}

	return &activity, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberN{Value: strconv.Itoa(params.UserID)},
		},
	}

	if params.From != nil && params.To != nil {
		in.FilterExpression = aws.String("occurredAt BETWEEN :from AND :to")
		in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{
			Value: params.From.Format(time.RFC3339Nano),
		}
		in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{
			Value: params.To.Format(time.RFC3339Nano),
		}
	}

	out, err := r.api.Query(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	activities := make([]Activity, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &activities); err != nil {
		return nil, fmt.Errorf("unmarshal activities: %w", err)
	}

	return activities, nil
}

func (r *Repo) Delete(ctx context.Context, userID int, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	out, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberN{Value: strconv.Itoa(userID)},
			"id":     &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	if len(out.Attributes) == 0 {
		return ErrActivityNotFound
	}

	return nil
}
