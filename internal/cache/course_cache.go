// Package cache provides the Redis-backed read cache for catalog data.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

const (
	keyPrefixCourse = "edumart:cache:course:"
	keyCourseList   = "edumart:cache:courses:all"
	keyPrefixUser   = "edumart:cache:user:"
)

// CourseCache memoizes course reads and mirrors user documents.
// Course entries carry a TTL; the user mirror is written without one.
type CourseCache interface {
	// GetCourse returns the cached course, or nil, nil on a miss.
	GetCourse(ctx context.Context, id primitive.ObjectID) (*entity.Course, error)

	// SetCourse stores a course under its id with the configured TTL.
	SetCourse(ctx context.Context, course *entity.Course) error

	// GetCourseList returns the cached visible-course list, or nil, nil on a miss.
	GetCourseList(ctx context.Context) ([]*entity.Course, error)

	// SetCourseList stores the visible-course list with the configured TTL.
	SetCourseList(ctx context.Context, courses []*entity.Course) error

	// InvalidateCourse drops the course entry and the list entry.
	InvalidateCourse(ctx context.Context, id primitive.ObjectID) error

	// MirrorUser stores the user document with no expiry.
	MirrorUser(ctx context.Context, user *entity.User) error
}

// redisCourseCache implements CourseCache on a redis client.
type redisCourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCourseCache creates a Redis-backed CourseCache with the given TTL
// for course entries.
func NewCourseCache(client *redis.Client, ttl time.Duration) CourseCache {
	return &redisCourseCache{client: client, ttl: ttl}
}

func (c *redisCourseCache) GetCourse(ctx context.Context, id primitive.ObjectID) (*entity.Course, error) {
	data, err := c.client.Get(ctx, keyPrefixCourse+id.Hex()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var course entity.Course
	if err := json.Unmarshal(data, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *redisCourseCache) SetCourse(ctx context.Context, course *entity.Course) error {
	data, err := json.Marshal(course)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefixCourse+course.ID.Hex(), data, c.ttl).Err()
}

func (c *redisCourseCache) GetCourseList(ctx context.Context) ([]*entity.Course, error) {
	data, err := c.client.Get(ctx, keyCourseList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var courses []*entity.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *redisCourseCache) SetCourseList(ctx context.Context, courses []*entity.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyCourseList, data, c.ttl).Err()
}

func (c *redisCourseCache) InvalidateCourse(ctx context.Context, id primitive.ObjectID) error {
	return c.client.Del(ctx, keyPrefixCourse+id.Hex(), keyCourseList).Err()
}

// MirrorUser stores the user with no expiry. This matches the
// historical behavior of the checkout flow; the entry is refreshed
// on every enrollment write.
func (c *redisCourseCache) MirrorUser(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefixUser+user.ID.Hex(), data, 0).Err()
}
