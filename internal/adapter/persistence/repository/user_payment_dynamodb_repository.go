package repository

import (
	"context"
	"errors"
	"strconv"

	"agroclima_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultUserPaymentsTableName = "user_payments"

// UserPaymentDynamoRepository persists the user↔payment association.
//
// Table requirements:
//   - PK: user_id (string, HASH) + payment_id (string, RANGE)
//
// The composite key is the uniqueness constraint; the conditional put
// turns duplicate link attempts into no-ops.

type UserPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserPaymentRepository = (*UserPaymentDynamoRepository)(nil)

func NewUserPaymentDynamoRepository(ddb *dynamodb.Client) *UserPaymentDynamoRepository {
	return &UserPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USER_PAYMENTS_TABLE", defaultUserPaymentsTableName),
	}
}

func (r *UserPaymentDynamoRepository) Link(ctx context.Context, userID int, paymentID string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"user_id":    &types.AttributeValueMemberS{Value: strconv.Itoa(userID)},
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
			"id":         &types.AttributeValueMemberS{Value: uuid.New().String()},
		},
		ConditionExpression: aws.String("attribute_not_exists(user_id) AND attribute_not_exists(payment_id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			// Pair already linked.
			return nil
		}
		return err
	}
	return nil
}
