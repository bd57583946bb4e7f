package saved_filter

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

type SavedFilterRepository interface {
	Create(ctx context.Context, filter *SavedFilter) error
	Get(ctx context.Context, id string) (*SavedFilter, error)
	Update(ctx context.Context, filter *SavedFilter) error
	Delete(ctx context.Context, id string) error
	FindByUser(ctx context.Context, userID string) ([]SavedFilter, error)
	FindPublic(ctx context.Context) ([]SavedFilter, error)
}

type SavedFilterRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSavedFilterRepository(db *database.MongodbDB) SavedFilterRepository {
	return &SavedFilterRepositoryImpl{
		collection: db.DB.Collection("saved_filters"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantIDStr, ok := ctx.Value(models.TenantIDKey).(string)
	if !ok || tenantIDStr == "" {
		return primitive.NilObjectID, fmt.Errorf("tenant ID not found in context")
	}
	return primitive.ObjectIDFromHex(tenantIDStr)
}

func (r *SavedFilterRepositoryImpl) Create(ctx context.Context, filter *SavedFilter) error {
	if filter.ID.IsZero() {
		filter.ID = primitive.NewObjectID()
	}
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	filter.TenantID = tenantID
	filter.CreatedAt = time.Now()
	filter.UpdatedAt = time.Now()

	_, err = r.collection.InsertOne(ctx, filter)
	return err
}

func (r *SavedFilterRepositoryImpl) Get(ctx context.Context, id string) (*SavedFilter, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var filter SavedFilter
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&filter)
	if err != nil {
		return nil, err
	}

	return &filter, nil
}

func (r *SavedFilterRepositoryImpl) Update(ctx context.Context, filter *SavedFilter) error {
	existing, err := r.Get(ctx, filter.ID.Hex())
	if err != nil {
		return err
	}

	// Preserve immutable fields
	filter.TenantID = existing.TenantID
	filter.UserID = existing.UserID
	filter.CreatedAt = existing.CreatedAt
	filter.UpdatedAt = time.Now()

	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": filter.ID}, filter)
	return err
}

func (r *SavedFilterRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (r *SavedFilterRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]SavedFilter, error) {
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	query := bson.M{
		"tenant_id": tenantID,
		"$or": []bson.M{
			{"user_id": userObjID},
			{"is_public": true},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var filters []SavedFilter
	if err := cursor.All(ctx, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

func (r *SavedFilterRepositoryImpl) FindPublic(ctx context.Context) ([]SavedFilter, error) {
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Find(ctx, bson.M{"tenant_id": tenantID, "is_public": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var filters []SavedFilter
	if err := cursor.All(ctx, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}
