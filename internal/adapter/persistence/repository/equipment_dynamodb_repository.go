package repository

import (
	"context"
	"errors"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEquipmentsTableName = "equipments"

	// batchWriteMaxItems is the DynamoDB BatchWriteItem hard limit.
	batchWriteMaxItems = 25
)

type equipmentItem struct {
	ID                  string   `dynamodbav:"id"`
	Tag                 string   `dynamodbav:"tag"`
	Name                string   `dynamodbav:"name"`
	Manufacturer        string   `dynamodbav:"manufacturer,omitempty"`
	Model               string   `dynamodbav:"model,omitempty"`
	SerialNumber        string   `dynamodbav:"serialNumber,omitempty"`
	Range               string   `dynamodbav:"range,omitempty"`
	Resolution          string   `dynamodbav:"resolution,omitempty"`
	Accuracy            string   `dynamodbav:"accuracy,omitempty"`
	Location            string   `dynamodbav:"location,omitempty"`
	Supplier            string   `dynamodbav:"supplier,omitempty"`
	Status              string   `dynamodbav:"status"`
	LastCalibrationDate string   `dynamodbav:"lastCalibrationDate,omitempty"`
	NextCalibrationDate string   `dynamodbav:"nextCalibrationDate,omitempty"`
	OpeningPressure     string   `dynamodbav:"openingPressure,omitempty"`
	ClosingPressure     string   `dynamodbav:"closingPressure,omitempty"`
	CreatedAt           string   `dynamodbav:"createdAt,omitempty"`
	DefaultTestGroups   []string `dynamodbav:"defaultTestGroups,omitempty"`
}

// EquipmentDynamoRepository persists Equipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Save is a plain PutItem upsert: the spreadsheet importer re-runs with the
// same sanitized tags and must overwrite, not conflict.

type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENTS_TABLE", defaultEquipmentsTableName),
	}
}

func (r *EquipmentDynamoRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	var (
		items    []entities.Equipment
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
			var it equipmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEquipmentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, err
	}
	return fromEquipmentItem(it), nil
}

func (r *EquipmentDynamoRepository) Save(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ListIDs returns up to limit document ids in scan order. Callers loop until
// an empty page comes back.
func (r *EquipmentDynamoRepository) ListIDs(ctx context.Context, limit int) ([]string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		Limit:                    aws.Int32(int32(limit)),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}

// DeleteBatch removes the given ids with BatchWriteItem, chunked at the API's
// 25-item limit. Unprocessed keys are resubmitted until the batch drains.
func (r *EquipmentDynamoRepository) DeleteBatch(ctx context.Context, ids []string) error {
	for start := 0; start < len(ids); start += batchWriteMaxItems {
		end := start + batchWriteMaxItems
		if end > len(ids) {
			end = len(ids)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, id := range ids[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
				},
			})
		}

		pending := map[string][]types.WriteRequest{r.tableName: requests}
		for len(pending[r.tableName]) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// UpdateCalibrationDates advances the schedule fields after a calibration is
// saved. A missing equipment document is not an error: the calibration record
// was already stored and may outlive its equipment.
func (r *EquipmentDynamoRepository) UpdateCalibrationDates(ctx context.Context, id, lastDate, nextDate string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #last = :last, #next = :next"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#last": "lastCalibrationDate",
			"#next": "nextCalibrationDate",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":last": &types.AttributeValueMemberS{Value: lastDate},
			":next": &types.AttributeValueMemberS{Value: nextDate},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:                  e.ID,
		Tag:                 e.Tag,
		Name:                e.Name,
		Manufacturer:        e.Manufacturer,
		Model:               e.Model,
		SerialNumber:        e.SerialNumber,
		Range:               e.Range,
		Resolution:          e.Resolution,
		Accuracy:            e.Accuracy,
		Location:            e.Location,
		Supplier:            e.Supplier,
		Status:              string(e.Status),
		LastCalibrationDate: e.LastCalibrationDate,
		NextCalibrationDate: e.NextCalibrationDate,
		OpeningPressure:     e.OpeningPressure,
		ClosingPressure:     e.ClosingPressure,
		CreatedAt:           e.CreatedAt,
		DefaultTestGroups:   e.DefaultTestGroups,
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	return entities.Equipment{
		ID:                  it.ID,
		Tag:                 it.Tag,
		Name:                it.Name,
		Manufacturer:        it.Manufacturer,
		Model:               it.Model,
		SerialNumber:        it.SerialNumber,
		Range:               it.Range,
		Resolution:          it.Resolution,
		Accuracy:            it.Accuracy,
		Location:            it.Location,
		Supplier:            it.Supplier,
		Status:              entities.EquipmentStatus(it.Status),
		LastCalibrationDate: it.LastCalibrationDate,
		NextCalibrationDate: it.NextCalibrationDate,
		OpeningPressure:     it.OpeningPressure,
		ClosingPressure:     it.ClosingPressure,
		CreatedAt:           it.CreatedAt,
		DefaultTestGroups:   it.DefaultTestGroups,
	}
}
