package infrastructure

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tidwall/gjson"
)

// BillingPayPerRequest and BillingProvisioned select how created tables are billed
const (
	BillingPayPerRequest = "PAY_PER_REQUEST"
	BillingProvisioned   = "PROVISIONED"
)

// TableSchema mirrors one entry of table_schema.json
type TableSchema struct {
	TableName              string                 `json:"TableName"`
	AttributeDefinitions   []AttributeDefinition  `json:"AttributeDefinitions"`
	KeySchema              []KeySchemaElement     `json:"KeySchema"`
	ProvisionedThroughput  Throughput             `json:"ProvisionedThroughput"`
	GlobalSecondaryIndexes []GlobalSecondaryIndex `json:"GlobalSecondaryIndexes,omitempty"`
}

type AttributeDefinition struct {
	AttributeName string `json:"AttributeName"`
	AttributeType string `json:"AttributeType"`
}

type KeySchemaElement struct {
	AttributeName string `json:"AttributeName"`
	KeyType       string `json:"KeyType"`
}

type Throughput struct {
	ReadCapacityUnits  int64 `json:"ReadCapacityUnits"`
	WriteCapacityUnits int64 `json:"WriteCapacityUnits"`
}

type GlobalSecondaryIndex struct {
	IndexName             string             `json:"IndexName"`
	KeySchema             []KeySchemaElement `json:"KeySchema"`
	Projection            Projection         `json:"Projection"`
	ProvisionedThroughput Throughput         `json:"ProvisionedThroughput"`
}

type Projection struct {
	ProjectionType string `json:"ProjectionType"`
}

//go:embed table_schema.json
var tablesSchema []byte

// SchemaNames lists the base table names defined in the embedded schema
func SchemaNames() []string {
	var names []string
	gjson.ParseBytes(tablesSchema).ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	sort.Strings(names)
	return names
}

// GetSchema returns the embedded schema for a base table name such as "inventory_items"
func GetSchema(baseName string) (*TableSchema, error) {
	tableJSON := gjson.GetBytes(tablesSchema, gjson.Escape(baseName))
	if !tableJSON.Exists() {
		return nil, fmt.Errorf("table schema not found for key: %s", baseName)
	}

	var schema TableSchema
	if err := json.Unmarshal([]byte(tableJSON.Raw), &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema JSON: %w", err)
	}
	return &schema, nil
}

// GetTables builds the CreateTable input for baseName under its physical (prefixed) name
func GetTables(baseName, tableName, billingMode string) (*dynamodb.CreateTableInput, error) {
	schema, err := GetSchema(baseName)
	if err != nil {
		return nil, err
	}
	schema.TableName = tableName
	return schema.ToDynamoInput(billingMode), nil
}

// IndexNames returns the GSI names declared for the table
func (ts *TableSchema) IndexNames() []string {
	names := make([]string, 0, len(ts.GlobalSecondaryIndexes))
	for _, g := range ts.GlobalSecondaryIndexes {
		names = append(names, g.IndexName)
	}
	return names
}

// ToDynamoInput converts the schema to a CreateTable input. Throughput is only
// sent for provisioned billing.
func (ts *TableSchema) ToDynamoInput(billingMode string) *dynamodb.CreateTableInput {
	provisioned := billingMode == BillingProvisioned

	attrDefs := make([]types.AttributeDefinition, 0, len(ts.AttributeDefinitions))
	for _, a := range ts.AttributeDefinitions {
		attrDefs = append(attrDefs, types.AttributeDefinition{
			AttributeName: aws.String(a.AttributeName),
			AttributeType: types.ScalarAttributeType(a.AttributeType),
		})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, g := range ts.GlobalSecondaryIndexes {
		gsi := types.GlobalSecondaryIndex{
			IndexName: aws.String(g.IndexName),
			KeySchema: keySchema(g.KeySchema),
			Projection: &types.Projection{
				ProjectionType: types.ProjectionType(g.Projection.ProjectionType),
			},
		}
		if provisioned {
			gsi.ProvisionedThroughput = throughput(g.ProvisionedThroughput)
		}
		gsis = append(gsis, gsi)
	}

	input := &dynamodb.CreateTableInput{
		TableName:              aws.String(ts.TableName),
		AttributeDefinitions:   attrDefs,
		KeySchema:              keySchema(ts.KeySchema),
		GlobalSecondaryIndexes: gsis,
	}
	if provisioned {
		input.BillingMode = types.BillingModeProvisioned
		input.ProvisionedThroughput = throughput(ts.ProvisionedThroughput)
	} else {
		input.BillingMode = types.BillingModePayPerRequest
	}
	return input
}

func keySchema(elements []KeySchemaElement) []types.KeySchemaElement {
	out := make([]types.KeySchemaElement, 0, len(elements))
	for _, k := range elements {
		out = append(out, types.KeySchemaElement{
			AttributeName: aws.String(k.AttributeName),
			KeyType:       types.KeyType(k.KeyType),
		})
	}
	return out
}

func throughput(t Throughput) *types.ProvisionedThroughput {
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(t.ReadCapacityUnits),
		WriteCapacityUnits: aws.Int64(t.WriteCapacityUnits),
	}
}
