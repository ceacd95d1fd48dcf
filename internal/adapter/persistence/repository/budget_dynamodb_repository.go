package repository

import (
	"context"
	"strconv"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type equipmentLinkItem struct {
	ID   string `dynamodbav:"id"`
	Tag  string `dynamodbav:"tag"`
	Name string `dynamodbav:"name"`
}

type budgetItem struct {
	ID          string              `dynamodbav:"id"`
	Equipments  []equipmentLinkItem `dynamodbav:"equipments,omitempty"`
	Provider    string              `dynamodbav:"provider"`
	Date        string              `dynamodbav:"date"`
	ServiceType string              `dynamodbav:"serviceType,omitempty"`
	Cost        string              `dynamodbav:"cost"`
	Status      string              `dynamodbav:"status"`
	Notes       string              `dynamodbav:"notes,omitempty"`

	// Legacy single-equipment attributes, still present on old documents.
	EquipmentID   string `dynamodbav:"equipmentId,omitempty"`
	EquipmentTag  string `dynamodbav:"equipmentTag,omitempty"`
	EquipmentName string `dynamodbav:"equipmentName,omitempty"`
}

// BudgetDynamoRepository persists BudgetRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Cost is stored as a string attribute to avoid float drift in the document;
// the domain type stays float64.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.BudgetRecord, error) {
	var (
		records  []entities.BudgetRecord
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromBudgetItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetRecord{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetRecord{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.BudgetRecord) (entities.BudgetRecord, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.BudgetRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BudgetRecord{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBudgetItem(b entities.BudgetRecord) budgetItem {
	links := make([]equipmentLinkItem, len(b.Equipments))
	for i, l := range b.Equipments {
		links[i] = equipmentLinkItem{ID: l.ID, Tag: l.Tag, Name: l.Name}
	}
	return budgetItem{
		ID:            b.ID,
		Equipments:    links,
		Provider:      b.Provider,
		Date:          b.Date,
		ServiceType:   b.ServiceType,
		Cost:          floatToString(b.Cost),
		Status:        string(b.Status),
		Notes:         b.Notes,
		EquipmentID:   b.EquipmentID,
		EquipmentTag:  b.EquipmentTag,
		EquipmentName: b.EquipmentName,
	}
}

func fromBudgetItem(it budgetItem) entities.BudgetRecord {
	links := make([]entities.EquipmentLink, len(it.Equipments))
	for i, l := range it.Equipments {
		links[i] = entities.EquipmentLink{ID: l.ID, Tag: l.Tag, Name: l.Name}
	}
	cost, _ := strconv.ParseFloat(it.Cost, 64)
	return entities.BudgetRecord{
		ID:            it.ID,
		Equipments:    links,
		Provider:      it.Provider,
		Date:          it.Date,
		ServiceType:   it.ServiceType,
		Cost:          cost,
		Status:        entities.BudgetStatus(it.Status),
		Notes:         it.Notes,
		EquipmentID:   it.EquipmentID,
		EquipmentTag:  it.EquipmentTag,
		EquipmentName: it.EquipmentName,
	}
}
