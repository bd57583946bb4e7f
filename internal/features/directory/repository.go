package directory

import (
	"context"
	"fmt"
	"time"

	"go-portal/internal/common/models"
	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// directoryColumnsKey is the single fixed key the column configuration is
// stored under, scoped per tenant and user by the document filter.
const directoryColumnsKey = "directory.columns"

// ViewPreference is the persisted column configuration document.
type ViewPreference struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TenantID  primitive.ObjectID `bson:"tenant_id"`
	UserID    string             `bson:"user_id"`
	Key       string             `bson:"key"`
	Columns   []ColumnSetting    `bson:"columns"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type PreferenceRepository interface {
	GetColumns(ctx context.Context, userID string) ([]ColumnSetting, error)
	SaveColumns(ctx context.Context, userID string, columns []ColumnSetting) error
}

type PreferenceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPreferenceRepository(mongodb *database.MongodbDB) PreferenceRepository {
	return &PreferenceRepositoryImpl{
		Collection: mongodb.DB.Collection("view_preferences"),
	}
}

func (r *PreferenceRepositoryImpl) tenant(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, fmt.Errorf("tenant context missing")
	}
	return primitive.ObjectIDFromHex(tenantID)
}

// GetColumns returns (nil, nil) when no preference has been saved yet.
func (r *PreferenceRepositoryImpl) GetColumns(ctx context.Context, userID string) ([]ColumnSetting, error) {
	oid, err := r.tenant(ctx)
	if err != nil {
		return nil, err
	}

	var pref ViewPreference
	filter := bson.M{"tenant_id": oid, "user_id": userID, "key": directoryColumnsKey}
	err = r.Collection.FindOne(ctx, filter).Decode(&pref)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return pref.Columns, nil
}

func (r *PreferenceRepositoryImpl) SaveColumns(ctx context.Context, userID string, columns []ColumnSetting) error {
	oid, err := r.tenant(ctx)
	if err != nil {
		return err
	}

	filter := bson.M{"tenant_id": oid, "user_id": userID, "key": directoryColumnsKey}
	update := bson.M{"$set": bson.M{
		"tenant_id":  oid,
		"user_id":    userID,
		"key":        directoryColumnsKey,
		"columns":    columns,
		"updated_at": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err = r.Collection.UpdateOne(ctx, filter, update, opts)
	return err
}
