package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationsCollection = "notifications"

type notificationDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Type         string             `bson:"type"`
	Title        string             `bson:"title"`
	Message      string             `bson:"message"`
	IsRead       bool               `bson:"is_read"`
	RelatedID    string             `bson:"related_id,omitempty"`
	RelatedModel string             `bson:"related_model,omitempty"`
	Metadata     map[string]any     `bson:"metadata,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func toDocument(n *domain.Notification) notificationDocument {
	return notificationDocument{
		UserID:       n.UserID,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		IsRead:       n.IsRead,
		RelatedID:    n.RelatedID,
		RelatedModel: n.RelatedModel,
		Metadata:     n.Metadata,
		CreatedAt:    n.CreatedAt.UTC(),
	}
}

func (d *notificationDocument) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		Type:         domain.NotificationType(d.Type),
		Title:        d.Title,
		Message:      d.Message,
		IsRead:       d.IsRead,
		RelatedID:    d.RelatedID,
		RelatedModel: d.RelatedModel,
		Metadata:     d.Metadata,
		CreatedAt:    d.CreatedAt,
	}
}

// NotificationStore keeps user inboxes in a MongoDB collection.
type NotificationStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewNotificationStore(ctx context.Context, conf *config.Mongo) (*NotificationStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := &NotificationStore{
		client:     client,
		collection: client.Database(conf.Database).Collection(notificationsCollection),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *NotificationStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}
	return nil
}

func (s *NotificationStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *NotificationStore) InsertNotification(ctx context.Context, n *domain.Notification) error {
	res, err := s.collection.InsertOne(ctx, toDocument(n))
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = id.Hex()
	}
	return nil
}

func (s *NotificationStore) ListNotifications(ctx context.Context, filter domain.NotificationFilter,
	page domain.Page) ([]*domain.Notification, int64, error) {
	query := bson.M{"user_id": filter.UserID}
	if filter.UnreadOnly {
		query["is_read"] = false
	}

	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	var docs []notificationDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	list := make([]*domain.Notification, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toDomain())
	}
	return list, total, nil
}

func (s *NotificationStore) CountNotifications(ctx context.Context, userID string) (*domain.NotificationCount, error) {
	total, err := s.collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	unread, err := s.collection.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
	if err != nil {
		return nil, err
	}
	return &domain.NotificationCount{Unread: unread, Total: total}, nil
}

func (s *NotificationStore) ReadNotification(ctx context.Context, id string) (*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDataNotFound
	}

	var doc notificationDocument
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, mapError(err)
	}
	return doc.toDomain(), nil
}

func (s *NotificationStore) MarkNotificationRead(ctx context.Context, id string) (*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDataNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc notificationDocument
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_read": true}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, mapError(err)
	}
	return doc.toDomain(), nil
}

func (s *NotificationStore) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	res, err := s.collection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *NotificationStore) DeleteNotification(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDataNotFound
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (s *NotificationStore) DeleteAllNotifications(ctx context.Context, userID string) (int64, error) {
	res, err := s.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func mapError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrDataNotFound
	}
	return err
}
