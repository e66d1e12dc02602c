package dal

import (
	"context"
	"errors"
	"firestation-backend/models"
	"fmt"
	"sort"
	"strings"
	"time"

	"firestation-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	maxTransactItems    = 100
	maxTransactAttempts = 3
)

// transactWriter is the part of the DynamoDB API used by TransactWrite
type transactWriter interface {
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type DynamoDBClient struct {
	client     *dynamodb.Client
	transactor transactWriter
	config     *models.Config
	logger     logger.Logger
	backoff    time.Duration
}

// NewDynamoDBClient creates a new DynamoDB client
func NewDynamoDBClient(cfg *models.Config, log logger.Logger) (*DynamoDBClient, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Use static credentials if provided
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"", // session token
		))
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		// Local DynamoDB
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})

	log.Infof("DynamoDB client initialized (region=%s, endpoint=%q)", cfg.AWSRegion, cfg.DynamoDBEndpoint)
	return &DynamoDBClient{
		client:     client,
		transactor: client,
		config:     cfg,
		logger:     log,
		backoff:    50 * time.Millisecond,
	}, nil
}

func keyAttribute(keyType models.AttributeType, value string) types.AttributeValue {
	switch keyType {
	case models.NumberType:
		return &types.AttributeValueMemberN{Value: value}
	case models.BinaryType:
		return &types.AttributeValueMemberB{Value: []byte(value)}
	default:
		return &types.AttributeValueMemberS{Value: value}
	}
}

// GetItem retrieves an item by its primary key, or the first match of an index query
// when config.IndexName is set. Returns models.ErrNotFound when nothing matches.
func (db *DynamoDBClient) GetItem(ctx context.Context, cfg models.QueryConfig, result interface{}) error {
	if cfg.IndexName != "" {
		output, err := db.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(cfg.TableName),
			IndexName:              aws.String(cfg.IndexName),
			Limit:                  aws.Int32(1),
			KeyConditionExpression: aws.String("#kn0 = :kv0"),
			ExpressionAttributeNames: map[string]string{
				"#kn0": cfg.KeyName,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":kv0": keyAttribute(cfg.KeyType, cfg.KeyValue),
			},
		})
		if err != nil {
			db.logger.Errorf("Failed to query %s.%s: %v", cfg.TableName, cfg.IndexName, err)
			return err
		}
		if len(output.Items) == 0 {
			return models.ErrNotFound
		}
		return attributevalue.UnmarshalMap(output.Items[0], result)
	}

	output, err := db.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(cfg.TableName),
		Key: map[string]types.AttributeValue{
			cfg.KeyName: keyAttribute(cfg.KeyType, cfg.KeyValue),
		},
	})
	if err != nil {
		db.logger.Errorf("Failed to get item: %v", err)
		return err
	}

	if output.Item == nil {
		return models.ErrNotFound
	}

	return attributevalue.UnmarshalMap(output.Item, result)
}

// CreateItem stores an item only if no item with the same id exists
func (db *DynamoDBClient) CreateItem(ctx context.Context, tableName string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = db.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if IsConditionalCheckFailed(err) {
		return fmt.Errorf("%w: %w", models.ErrConflict, ErrConditionFailed)
	}
	return err
}

// UpdateExpression is the rendered form of an update map
type UpdateExpression struct {
	Expression string
	Names      map[string]string
	Values     map[string]types.AttributeValue
}

// BuildUpdateExpression renders updates as a SET expression. Fields are sorted
// so that the same map always produces the same expression.
func BuildUpdateExpression(updates map[string]interface{}) (*UpdateExpression, error) {
	return buildWriteExpression(updates, nil)
}

// buildWriteExpression renders a SET clause for set and an ADD clause for add
func buildWriteExpression(set, add map[string]interface{}) (*UpdateExpression, error) {
	if len(set) == 0 && len(add) == 0 {
		return nil, errors.New("no fields to update")
	}

	expr := &UpdateExpression{
		Names:  make(map[string]string, len(set)+len(add)),
		Values: make(map[string]types.AttributeValue, len(set)+len(add)),
	}
	var clauses []string
	if len(set) > 0 {
		parts, err := expr.render(set, "#f", ":v", " = ")
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, "SET "+strings.Join(parts, ", "))
	}
	if len(add) > 0 {
		parts, err := expr.render(add, "#a", ":a", " ")
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, "ADD "+strings.Join(parts, ", "))
	}
	expr.Expression = strings.Join(clauses, " ")
	return expr, nil
}

func (e *UpdateExpression) render(fields map[string]interface{}, namePrefix, valuePrefix, sep string) ([]string, error) {
	keys := make([]string, 0, len(fields))
	for field := range fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for i, field := range keys {
		attrName := fmt.Sprintf("%s%d", namePrefix, i)
		attrValue := fmt.Sprintf("%s%d", valuePrefix, i)
		e.Names[attrName] = field

		av, err := attributevalue.Marshal(fields[field])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %s: %w", field, err)
		}
		e.Values[attrValue] = av
		parts = append(parts, attrName+sep+attrValue)
	}
	return parts, nil
}

func (e *UpdateExpression) withCondition(cond models.Condition) (string, error) {
	av, err := attributevalue.Marshal(cond.Equals)
	if err != nil {
		return "", fmt.Errorf("failed to marshal condition: %w", err)
	}
	e.Names["#cond"] = cond.Field
	e.Values[":cond"] = av
	return "#cond = :cond", nil
}

// UpdateItem updates an existing item in DynamoDB
func (db *DynamoDBClient) UpdateItem(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}) error {
	expr, err := BuildUpdateExpression(updates)
	if err != nil {
		return err
	}

	_, err = db.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: keyValue},
		},
		UpdateExpression:          aws.String(expr.Expression),
		ConditionExpression:       aws.String("attribute_exists(" + key + ")"),
		ExpressionAttributeNames:  expr.Names,
		ExpressionAttributeValues: expr.Values,
	})
	if IsConditionalCheckFailed(err) {
		return models.ErrNotFound
	}
	return err
}

// UpdateItemIf updates an item only while cond holds. A failed condition returns ErrConditionFailed.
func (db *DynamoDBClient) UpdateItemIf(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}, cond models.Condition) error {
	expr, err := BuildUpdateExpression(updates)
	if err != nil {
		return err
	}
	condition, err := expr.withCondition(cond)
	if err != nil {
		return err
	}

	_, err = db.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: keyValue},
		},
		UpdateExpression:          aws.String(expr.Expression),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  expr.Names,
		ExpressionAttributeValues: expr.Values,
	})
	if IsConditionalCheckFailed(err) {
		return ErrConditionFailed
	}
	return err
}

// DeleteItem deletes an item from DynamoDB
func (db *DynamoDBClient) DeleteItem(ctx context.Context, tableName, key, value string) error {
	_, err := db.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: value},
		},
	})
	return err
}

// DeleteItemIf deletes an item only while cond holds
func (db *DynamoDBClient) DeleteItemIf(ctx context.Context, tableName, key, value string, cond models.Condition) error {
	av, err := attributevalue.Marshal(cond.Equals)
	if err != nil {
		return fmt.Errorf("failed to marshal condition: %w", err)
	}

	_, err = db.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: value},
		},
		ConditionExpression:       aws.String("#cond = :cond"),
		ExpressionAttributeNames:  map[string]string{"#cond": cond.Field},
		ExpressionAttributeValues: map[string]types.AttributeValue{":cond": av},
	})
	if IsConditionalCheckFailed(err) {
		return ErrConditionFailed
	}
	return err
}

// QueryByIndex queries all items matching keyValue on a global secondary index
func (db *DynamoDBClient) QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String("#kn0 = :kv0"),
		ExpressionAttributeNames: map[string]string{
			"#kn0": keyName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kv0": &types.AttributeValueMemberS{Value: keyValue},
		},
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewQueryPaginator(db.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			db.logger.Errorf("Failed to query %s.%s: %v", tableName, indexName, err)
			return err
		}
		items = append(items, page.Items...)
	}

	return attributevalue.UnmarshalListOfMaps(items, results)
}

// Scan reads every item of the table, following LastEvaluatedKey
func (db *DynamoDBClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(db.client, &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			db.logger.Errorf("Failed to scan %s: %v", tableName, err)
			return err
		}
		items = append(items, page.Items...)
	}

	return attributevalue.UnmarshalListOfMaps(items, results)
}

// TransactWrite commits ops atomically: every write applies or none does. A
// failed condition returns a *ConditionError naming the write. Throttled or
// contended transactions are resent with the same request token.
func (db *DynamoDBClient) TransactWrite(ctx context.Context, ops []models.WriteOp) error {
	if len(ops) == 0 {
		return errors.New("no writes to commit")
	}
	if len(ops) > maxTransactItems {
		return fmt.Errorf("transaction of %d writes exceeds the limit of %d", len(ops), maxTransactItems)
	}

	items := make([]types.TransactWriteItem, 0, len(ops))
	for i, op := range ops {
		item, err := transactItem(op)
		if err != nil {
			return fmt.Errorf("write %d: %w", i, err)
		}
		items = append(items, item)
	}
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems:      items,
		ClientRequestToken: aws.String(uuid.NewString()),
	}

	var err error
	for attempt := 1; attempt <= maxTransactAttempts; attempt++ {
		if _, err = db.transactor.TransactWriteItems(ctx, input); err == nil {
			return nil
		}
		if condErr := conditionError(err); condErr != nil {
			return condErr
		}
		if !RetryableTransaction(err) || attempt == maxTransactAttempts {
			break
		}
		db.logger.Warnf("Transaction of %d writes was contended, retrying (%d/%d)", len(ops), attempt, maxTransactAttempts)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * db.backoff):
		}
	}
	db.logger.Errorf("Transaction of %d writes failed: %v", len(ops), err)
	return err
}

func transactItem(op models.WriteOp) (types.TransactWriteItem, error) {
	if op.Item != nil {
		av, err := attributevalue.MarshalMap(op.Item)
		if err != nil {
			return types.TransactWriteItem{}, fmt.Errorf("failed to marshal item: %w", err)
		}
		return types.TransactWriteItem{Put: &types.Put{
			TableName:           aws.String(op.TableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		}}, nil
	}

	expr, err := buildWriteExpression(op.Set, op.Add)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	condition := "attribute_exists(id)"
	if op.Condition != nil {
		if condition, err = expr.withCondition(*op.Condition); err != nil {
			return types.TransactWriteItem{}, err
		}
	}
	return types.TransactWriteItem{Update: &types.Update{
		TableName: aws.String(op.TableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: op.KeyValue},
		},
		UpdateExpression:          aws.String(expr.Expression),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  expr.Names,
		ExpressionAttributeValues: expr.Values,
	}}, nil
}

// CreateTable creates a table
func (db *DynamoDBClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	_, err := db.client.CreateTable(ctx, input)
	return err
}

// DescribeTable describes a table
func (db *DynamoDBClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	input := &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	}
	return db.client.DescribeTable(ctx, input)
}
