package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Video is a curated workout video from the shared catalog. Like the
// exercise library, the catalog lives in DynamoDB and is seeded by ops
// tooling.
type Video struct {
	ID              string   `json:"id" dynamodbav:"id"`
	Title           string   `json:"title" dynamodbav:"title"`
	Thumbnail       string   `json:"thumbnail" dynamodbav:"thumbnail"`
	Duration        string   `json:"duration" dynamodbav:"duration"`
	ChannelName     string   `json:"channelName" dynamodbav:"channelName"`
	ViewCount       int      `json:"viewCount" dynamodbav:"viewCount"`
	Category        string   `json:"category" dynamodbav:"category"`
	Difficulty      string   `json:"difficulty" dynamodbav:"difficulty"`
	TargetMuscles   []string `json:"targetMuscles" dynamodbav:"targetMuscles"`
	EquipmentNeeded []string `json:"equipmentNeeded" dynamodbav:"equipmentNeeded"`
}

// videosDynamoAPI is the minimal DynamoDB interface required by VideosRepo.
// Defined here for testability.
type videosDynamoAPI interface {
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type VideosRepo struct {
	api       videosDynamoAPI
	tableName string
}

func NewVideosRepo(api videosDynamoAPI, tableName string) (*VideosRepo, error) {
	if api == nil {
		return nil, errors.New("videos repo: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("videos repo: table name must not be empty")
	}
	return &VideosRepo{
		api:       api,
		tableName: tableName,
	}, nil
}

func (r *VideosRepo) List(ctx context.Context) (_ []Video, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listVideos")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var videos []Video
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	for {
		out, err := r.api.Scan(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("scan workout videos: %w", err)
		}

		var page []Video
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal workout videos: %w", err)
		}
		videos = append(videos, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return videos, nil
}
