package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase/interfaces"
)

const defaultQuotesTableName = "quote_requests"

// batchWriteMax is the DynamoDB BatchWriteItem request ceiling.
const batchWriteMax = 25

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	Company     string `dynamodbav:"company"`
	ProjectType string `dynamodbav:"project_type"`
	Budget      string `dynamodbav:"budget"`
	Timeline    string `dynamodbav:"timeline"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository keeps the quote collection in a DynamoDB table
// (PK: id) while honoring the whole-collection contract: ReadAll scans
// the table, WriteAll puts every record and deletes rows missing from
// the new collection. Concurrent WriteAll calls are last-writer-wins;
// the default file store should be preferred unless shared storage is
// actually needed.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) ReadAll(ctx context.Context) ([]entities.QuoteRequest, error) {
	quotes := []entities.QuoteRequest{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrStorageRead, err)
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrStorageRead, err)
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) WriteAll(ctx context.Context, quotes []entities.QuoteRequest) error {
	current, err := r.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
	}

	keep := make(map[string]struct{}, len(quotes))
	var writes []types.WriteRequest

	for _, q := range quotes {
		keep[q.ID] = struct{}{}
		av, err := attributevalue.MarshalMap(toQuoteItem(q))
		if err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
		}
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	for _, q := range current {
		if _, ok := keep[q.ID]; ok {
			continue
		}
		writes = append(writes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: q.ID},
			},
		}})
	}

	for start := 0; start < len(writes); start += batchWriteMax {
		end := start + batchWriteMax
		if end > len(writes) {
			end = len(writes)
		}
		if err := r.batchWrite(ctx, writes[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) batchWrite(ctx context.Context, batch []types.WriteRequest) error {
	pending := batch
	for attempt := 0; len(pending) > 0 && attempt < 3; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: pending},
		})
		if err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrStorageWrite, err)
		}
		pending = out.UnprocessedItems[r.tableName]
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w: %d unprocessed items after retries", interfaces.ErrStorageWrite, len(pending))
	}
	return nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	return quoteItem{
		ID:          q.ID,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		Company:     q.Company,
		ProjectType: q.ProjectType,
		Budget:      q.Budget,
		Timeline:    q.Timeline,
		Description: q.Description,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.QuoteRequest{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		Company:     it.Company,
		ProjectType: it.ProjectType,
		Budget:      it.Budget,
		Timeline:    it.Timeline,
		Description: it.Description,
		Status:      entities.QuoteStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
