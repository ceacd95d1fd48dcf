package repository

import (
	"context"

	"metrologia_avc/internal/domain/entities"
	"metrologia_avc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCalibrationsTableName = "calibrations"
	calibrationsEquipmentIDIndex = "equipmentId-index"
)

type measurementPointItem struct {
	ID             string  `dynamodbav:"id"`
	ReferenceValue float64 `dynamodbav:"referenceValue"`
	MeasuredValue  float64 `dynamodbav:"measuredValue"`
	Error          float64 `dynamodbav:"error"`
	Uncertainty    float64 `dynamodbav:"uncertainty"`
}

type measurementGroupItem struct {
	ID           string                 `dynamodbav:"id"`
	Name         string                 `dynamodbav:"name"`
	Measurements []measurementPointItem `dynamodbav:"measurements"`
}

type calibrationItem struct {
	ID                string                 `dynamodbav:"id"`
	EquipmentID       string                 `dynamodbav:"equipmentId"`
	Date              string                 `dynamodbav:"date"`
	Technician        string                 `dynamodbav:"technician"`
	Temperature       float64                `dynamodbav:"temperature"`
	Humidity          float64                `dynamodbav:"humidity"`
	StandardUsed      string                 `dynamodbav:"standardUsed,omitempty"`
	Measurements      []measurementPointItem `dynamodbav:"measurements"`
	MeasurementGroups []measurementGroupItem `dynamodbav:"measurementGroups,omitempty"`
	Result            string                 `dynamodbav:"result"`
	Notes             string                 `dynamodbav:"notes,omitempty"`
	AIAnalysis        string                 `dynamodbav:"aiAnalysis,omitempty"`
}

// CalibrationDynamoRepository persists CalibrationRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: equipmentId-index (PK: equipmentId)
//
// Older documents have no measurementGroups attribute, only the flat
// measurements list; the use case layer synthesizes the group on load.

type CalibrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalibrationRepository = (*CalibrationDynamoRepository)(nil)

func NewCalibrationDynamoRepository(ddb *dynamodb.Client) *CalibrationDynamoRepository {
	return &CalibrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALIBRATIONS_TABLE", defaultCalibrationsTableName),
	}
}

// ListByEquipmentID queries the GSI for one equipment's records; an empty id
// scans the whole collection instead.
func (r *CalibrationDynamoRepository) ListByEquipmentID(ctx context.Context, equipmentID string) ([]entities.CalibrationRecord, error) {
	if equipmentID == "" {
		return r.listAll(ctx)
	}

	var (
		records  []entities.CalibrationRecord
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(calibrationsEquipmentIDIndex),
			KeyConditionExpression: aws.String("equipmentId = :eid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: equipmentID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		records, err = appendCalibrationItems(records, out.Items)
		if err != nil {
			return nil, err
		}
		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CalibrationDynamoRepository) listAll(ctx context.Context) ([]entities.CalibrationRecord, error) {
	var (
		records  []entities.CalibrationRecord
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
		records, err = appendCalibrationItems(records, out.Items)
		if err != nil {
			return nil, err
		}
		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CalibrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.CalibrationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalibrationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CalibrationRecord{}, nil
	}

	var it calibrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalibrationRecord{}, err
	}
	return fromCalibrationItem(it), nil
}

func (r *CalibrationDynamoRepository) Save(ctx context.Context, rec entities.CalibrationRecord) (entities.CalibrationRecord, error) {
	av, err := attributevalue.MarshalMap(toCalibrationItem(rec))
	if err != nil {
		return entities.CalibrationRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CalibrationRecord{}, err
	}
	return rec, nil
}

func appendCalibrationItems(records []entities.CalibrationRecord, raw []map[string]types.AttributeValue) ([]entities.CalibrationRecord, error) {
	for _, item := range raw {
		var it calibrationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromCalibrationItem(it))
	}
	return records, nil
}

func toCalibrationItem(r entities.CalibrationRecord) calibrationItem {
	return calibrationItem{
		ID:                r.ID,
		EquipmentID:       r.EquipmentID,
		Date:              r.Date,
		Technician:        r.Technician,
		Temperature:       r.Temperature,
		Humidity:          r.Humidity,
		StandardUsed:      r.StandardUsed,
		Measurements:      toPointItems(r.Measurements),
		MeasurementGroups: toGroupItems(r.MeasurementGroups),
		Result:            string(r.Result),
		Notes:             r.Notes,
		AIAnalysis:        r.AIAnalysis,
	}
}

func fromCalibrationItem(it calibrationItem) entities.CalibrationRecord {
	return entities.CalibrationRecord{
		ID:                it.ID,
		EquipmentID:       it.EquipmentID,
		Date:              it.Date,
		Technician:        it.Technician,
		Temperature:       it.Temperature,
		Humidity:          it.Humidity,
		StandardUsed:      it.StandardUsed,
		Measurements:      fromPointItems(it.Measurements),
		MeasurementGroups: fromGroupItems(it.MeasurementGroups),
		Result:            entities.CalibrationResult(it.Result),
		Notes:             it.Notes,
		AIAnalysis:        it.AIAnalysis,
	}
}

func toPointItems(points []entities.MeasurementPoint) []measurementPointItem {
	out := make([]measurementPointItem, len(points))
	for i, p := range points {
		out[i] = measurementPointItem{
			ID:             p.ID,
			ReferenceValue: p.ReferenceValue,
			MeasuredValue:  p.MeasuredValue,
			Error:          p.Error,
			Uncertainty:    p.Uncertainty,
		}
	}
	return out
}

func fromPointItems(items []measurementPointItem) []entities.MeasurementPoint {
	out := make([]entities.MeasurementPoint, len(items))
	for i, it := range items {
		out[i] = entities.MeasurementPoint{
			ID:             it.ID,
			ReferenceValue: it.ReferenceValue,
			MeasuredValue:  it.MeasuredValue,
			Error:          it.Error,
			Uncertainty:    it.Uncertainty,
		}
	}
	return out
}

func toGroupItems(groups []entities.MeasurementGroup) []measurementGroupItem {
	if groups == nil {
		return nil
	}
	out := make([]measurementGroupItem, len(groups))
	for i, g := range groups {
		out[i] = measurementGroupItem{
			ID:           g.ID,
			Name:         g.Name,
			Measurements: toPointItems(g.Measurements),
		}
	}
	return out
}

func fromGroupItems(items []measurementGroupItem) []entities.MeasurementGroup {
	if items == nil {
		return nil
	}
	out := make([]entities.MeasurementGroup, len(items))
	for i, it := range items {
		out[i] = entities.MeasurementGroup{
			ID:           it.ID,
			Name:         it.Name,
			Measurements: fromPointItems(it.Measurements),
		}
	}
	return out
}
