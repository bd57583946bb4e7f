package member

import (
	"context"
	"fmt"

	"go-portal/internal/common/models"
	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	FindByID(ctx context.Context, id string) (*models.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	List(ctx context.Context) ([]models.TeamMember, error)
	Update(ctx context.Context, id string, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type MemberRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewMemberRepository(mongodb *database.MongodbDB) MemberRepository {
	return &MemberRepositoryImpl{
		Collection: mongodb.DB.Collection("team_members"),
	}
}

func tenantScope(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, fmt.Errorf("tenant context missing")
	}
	return primitive.ObjectIDFromHex(tenantID)
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, member *models.TeamMember) error {
	oid, err := tenantScope(ctx)
	if err != nil {
		return err
	}
	member.TenantID = oid

	_, err = r.Collection.InsertOne(ctx, member)
	return err
}

func (r *MemberRepositoryImpl) FindByID(ctx context.Context, id string) (*models.TeamMember, error) {
	oid, err := tenantScope(ctx)
	if err != nil {
		return nil, err
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var member models.TeamMember
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "tenant_id": oid}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	oid, err := tenantScope(ctx)
	if err != nil {
		return nil, err
	}

	var member models.TeamMember
	err = r.Collection.FindOne(ctx, bson.M{"email": email, "tenant_id": oid}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns the tenant's full directory in stable creation order. The
// directory is small enough (<10k members) that filtering happens in memory
// downstream.
func (r *MemberRepositoryImpl) List(ctx context.Context) ([]models.TeamMember, error) {
	oid, err := tenantScope(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"tenant_id": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, id string, member *models.TeamMember) error {
	oid, err := tenantScope(ctx)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": member}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "tenant_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MemberRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := tenantScope(ctx)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "tenant_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
