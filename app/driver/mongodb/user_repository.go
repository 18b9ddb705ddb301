package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"user-api/app/domain"
	"user-api/app/port"
	apperrors "user-api/app/utils/errors"
)

// userDoc is the persisted shape of a user
type userDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	Name         string        `bson:"name"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository implements port.UserRepository for MongoDB
type UserRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewUserRepository creates a new MongoDB user repository
func NewUserRepository(db *DB, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		coll:   db.Database().Collection(usersColl),
		logger: logger.With("component", "user_repository"),
	}
}

// FindByEmail looks up a user by normalized email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return doc.toDomain(), nil
}

// FindByID looks up a user by id. A malformed id cannot match any document,
// so it is reported as not found rather than as a server fault.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return doc.toDomain(), nil
}

// FindAll returns all users ordered by creation time
func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	users := make([]*domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}
	return users, nil
}

// Insert persists a new user and fills in its id. A duplicate email is
// reported as the user-exists error regardless of whether the caller's
// pre-check raced with a concurrent insert.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		ID:           bson.NewObjectID(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserExists
		}
		return apperrors.NewDatabaseError(err)
	}

	user.ID = doc.ID.Hex()
	return nil
}

// Update applies the non-nil fields of the update and returns the updated
// user
func (r *UserRepository) Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apperrors.ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, apperrors.ErrUserExists
		default:
			return nil, apperrors.NewDatabaseError(err)
		}
	}
	return doc.toDomain(), nil
}

// Delete removes a user by id
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
