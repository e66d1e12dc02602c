package models

// AttributeType enum for different DynamoDB attribute types
type AttributeType int

const (
	StringType AttributeType = iota
	NumberType
	BinaryType
)

// QueryConfig holds all the configuration for any DynamoDB query
type QueryConfig struct {
	TableName string
	IndexName string // empty for primary key lookups
	KeyName   string
	KeyValue  string
	KeyType   AttributeType // For different data types
}

// Condition guards a write: the stored Field must currently equal Equals
type Condition struct {
	Field  string
	Equals interface{}
}

// WriteOp is one write of a transaction on an item keyed by id. Item set means
// a put of a new item. Otherwise Set and Add update the item KeyValue, which
// must exist and, when Condition is set, still match it.
type WriteOp struct {
	TableName string
	KeyValue  string
	Item      interface{}
	Set       map[string]interface{}
	Add       map[string]interface{}
	Condition *Condition
}
