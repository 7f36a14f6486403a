package repository

import (
	"context"
	"time"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsPaymentIDIndex   = "payment_id-index"
	paymentsPreferenceIndex  = "preference_id-index"
)

type paymentItem struct {
	ID                string         `dynamodbav:"id"`
	PaymentID         string         `dynamodbav:"payment_id,omitempty"`
	Status            string         `dynamodbav:"status"`
	Amount            float64        `dynamodbav:"amount"`
	Currency          string         `dynamodbav:"currency,omitempty"`
	PayerEmail        string         `dynamodbav:"payer_email,omitempty"`
	ExternalReference string         `dynamodbav:"external_reference,omitempty"`
	PreferenceID      string         `dynamodbav:"preference_id,omitempty"`
	OrderID           string         `dynamodbav:"order_id,omitempty"`
	Metadata          map[string]any `dynamodbav:"metadata,omitempty"`
	CreatedAt         string         `dynamodbav:"created_at"`
	PerformedAt       string         `dynamodbav:"performed_at,omitempty"`
}

// PaymentDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string, internal uuid)
//   - GSI: payment_id-index (PK: payment_id)
//   - GSI: preference_id-index (PK: preference_id)
//
// Save is a full-row put; the ledger reconciler performs read-merge-write
// so redeliveries update the same row.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Save(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Payment, error) {
	return r.queryOne(ctx, paymentsPaymentIDIndex, "payment_id", paymentID)
}

func (r *PaymentDynamoRepository) GetByPreferenceID(ctx context.Context, preferenceID string) (entities.Payment, error) {
	return r.queryOne(ctx, paymentsPreferenceIndex, "preference_id", preferenceID)
}

func (r *PaymentDynamoRepository) queryOne(ctx context.Context, index, key, value string) (entities.Payment, error) {
	if value == "" {
		return entities.Payment{}, nil
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                p.ID,
		PaymentID:         p.PaymentID,
		Status:            string(p.Status),
		Amount:            p.Amount,
		Currency:          p.Currency,
		PayerEmail:        p.PayerEmail,
		ExternalReference: p.ExternalReference,
		PreferenceID:      p.PreferenceID,
		OrderID:           p.OrderID,
		Metadata:          p.Metadata,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !p.PerformedAt.IsZero() {
		it.PerformedAt = p.PerformedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Payment{
		ID:                it.ID,
		PaymentID:         it.PaymentID,
		Status:            entities.PaymentStatus(it.Status),
		Amount:            it.Amount,
		Currency:          it.Currency,
		PayerEmail:        it.PayerEmail,
		ExternalReference: it.ExternalReference,
		PreferenceID:      it.PreferenceID,
		OrderID:           it.OrderID,
		Metadata:          it.Metadata,
		CreatedAt:         createdAt,
	}
	if it.PerformedAt != "" {
		p.PerformedAt, _ = time.Parse(time.RFC3339Nano, it.PerformedAt)
	}
	return p
}
