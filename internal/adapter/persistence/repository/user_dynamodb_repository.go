package repository

import (
	"context"
	"errors"
	"strconv"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	Login       string `dynamodbav:"login"`
	ID          int    `dynamodbav:"id"`
	Nome        string `dynamodbav:"nome"`
	MaxSessions int    `dynamodbav:"max_sessions"`
	Pagante     string `dynamodbav:"pagante"`
}

// UserDynamoRepository persists local user profiles in DynamoDB.
//
// Table requirements:
//   - PK: login (string)
//
// Login is the natural unique key of the legacy backend, so it doubles as
// the partition key and makes upsert-by-login a plain PutItem.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByLogin(ctx context.Context, login string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"login": &types.AttributeValueMemberS{Value: login},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

// MarkPaid updates the row in place. The attribute_exists condition makes
// a missing row fail with interfaces.ErrUserRowMissing instead of
// materializing a partial profile.
func (r *UserDynamoRepository) MarkPaid(ctx context.Context, login string, sessions int) error {
	update := "SET pagante = :p"
	values := map[string]types.AttributeValue{
		":p": &types.AttributeValueMemberS{Value: entities.PaganteYes},
	}
	if entities.IsValidSessionTier(sessions) {
		update += ", max_sessions = :s"
		values[":s"] = &types.AttributeValueMemberN{Value: strconv.Itoa(sessions)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"login": &types.AttributeValueMemberS{Value: login},
		},
		UpdateExpression:          aws.String(update),
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(#l)"),
		ExpressionAttributeNames: map[string]string{
			"#l": "login",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrUserRowMissing
		}
		return err
	}
	return nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		Login:       u.Login,
		ID:          u.ID,
		Nome:        u.Nome,
		MaxSessions: u.MaxSessions,
		Pagante:     u.Pagante,
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:          it.ID,
		Nome:        it.Nome,
		Login:       it.Login,
		MaxSessions: it.MaxSessions,
		Pagante:     it.Pagante,
	}
}
