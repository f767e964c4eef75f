package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/client/repositories/kv"
	"github.com/pilearning/pilearn/internal/common"
	"github.com/pilearning/pilearn/internal/dbx"
)

// usersKey is the single kv key the whole credential collection lives
// under.
const usersKey = "pilearning_users"

// userCollection is the persisted JSON envelope.
type userCollection struct {
	Users []models.CredentialRecord `json:"users"`
}

// KVRepository stores the credential collection as one JSON document in
// the kv table. Insert runs the read-modify-write inside a transaction, so
// the duplicate check and the collection rewrite are a single atomic step.
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

func load(ctx context.Context, q dbx.DBTX) ([]models.CredentialRecord, error) {
	data, err := kv.NewSQLiteRepository(q).Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var col userCollection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("failed to decode user collection: %w", err)
	}
	return col.Users, nil
}

func save(ctx context.Context, q dbx.DBTX, users []models.CredentialRecord) error {
	data, err := json.Marshal(userCollection{Users: users})
	if err != nil {
		return fmt.Errorf("failed to encode user collection: %w", err)
	}
	return kv.NewSQLiteRepository(q).Set(ctx, usersKey, data)
}

func (r *KVRepository) FindByUsername(ctx context.Context, username string) (*models.CredentialRecord, error) {
	users, err := load(ctx, r.db)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			rec := users[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *KVRepository) Insert(ctx context.Context, rec *models.CredentialRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users, err := load(ctx, tx)
		if err != nil {
			return err
		}

		for i := range users {
			if strings.EqualFold(users[i].Username, rec.Username) {
				return common.ErrDuplicateUser
			}
		}

		return save(ctx, tx, append(users, *rec))
	})
}
