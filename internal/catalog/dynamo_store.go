package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/imrishuroy/storefront/internal/apperr"
	"github.com/imrishuroy/storefront/internal/aws"
)

// counterID is the key of the item holding the id counter. Products start at 1.
const counterID = 0

// DynamoStore implements Store on a DynamoDB table keyed by numeric "id".
// Ids are allocated with an atomic ADD on the counter item, so they are never reused.
type DynamoStore struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewDynamoStore returns a store bound to tableName.
func NewDynamoStore(client aws.DynamoDBAPI, tableName string) *DynamoStore {
	return &DynamoStore{
		client:    client,
		tableName: tableName,
	}
}

// List scans every page of the table and returns products sorted by id.
func (s *DynamoStore) List(ctx context.Context) ([]Product, error) {
	products := []Product{}
	input := &dyn.ScanInput{
		TableName:        sdkaws.String(s.tableName),
		FilterExpression: sdkaws.String("id > :counter"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":counter": idAttr(counterID),
		},
	}
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		var page []Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		for _, p := range page {
			products = append(products, p.clone())
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Create validates in, allocates an id and writes the product.
func (s *DynamoStore) Create(ctx context.Context, in NewProduct) (Product, error) {
	if _, err := build(0, in); err != nil {
		return Product{}, err
	}
	id, err := s.allocateID(ctx)
	if err != nil {
		return Product{}, err
	}
	p, err := build(id, in)
	if err != nil {
		return Product{}, err
	}
	if err := s.put(ctx, p, "attribute_not_exists(id)"); err != nil {
		if isConditionFailed(err) {
			return Product{}, fmt.Errorf("product id %d already taken: %w", id, err)
		}
		return Product{}, err
	}
	return p, nil
}

// Update reads the product, applies patch and writes it back only if it still exists.
func (s *DynamoStore) Update(ctx context.Context, id int64, patch Patch) (Product, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if current == nil {
		return Product{}, apperr.NotFound("product not found")
	}
	updated, err := apply(*current, patch)
	if err != nil {
		return Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	if err := s.put(ctx, updated, "attribute_exists(id)"); err != nil {
		if isConditionFailed(err) {
			return Product{}, apperr.NotFound("product not found")
		}
		return Product{}, err
	}
	return updated, nil
}

// Delete removes the item; DynamoDB deletes of missing keys succeed, which keeps this idempotent.
func (s *DynamoStore) Delete(ctx context.Context, id int64) error {
	if id <= counterID {
		return nil
	}
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: sdkaws.String(s.tableName),
		Key:       map[string]types.AttributeValue{"id": idAttr(id)},
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *DynamoStore) get(ctx context.Context, id int64) (*Product, error) {
	if id <= counterID {
		return nil, nil
	}
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName:      sdkaws.String(s.tableName),
		Key:            map[string]types.AttributeValue{"id": idAttr(id)},
		ConsistentRead: sdkaws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	p = p.clone()
	return &p, nil
}

func (s *DynamoStore) put(ctx context.Context, p Product, condition string) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           sdkaws.String(s.tableName),
		Item:                item,
		ConditionExpression: sdkaws.String(condition),
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

func (s *DynamoStore) allocateID(ctx context.Context) (int64, error) {
	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName:        sdkaws.String(s.tableName),
		Key:              map[string]types.AttributeValue{"id": idAttr(counterID)},
		UpdateExpression: sdkaws.String("ADD next_id :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inc": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocate product id: %w", err)
	}
	n, ok := out.Attributes["next_id"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("allocate product id: counter missing from response")
	}
	id, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("allocate product id: %w", err)
	}
	return id, nil
}

func idAttr(id int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)}
}

func isConditionFailed(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException"
}
