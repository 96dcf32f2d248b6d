package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// TopicCourseUpdated is published after a course has been edited.
const TopicCourseUpdated = "course.updated"

// CourseUpdated is the payload of TopicCourseUpdated.
type CourseUpdated struct {
	CourseID  string    `json:"course_id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	ImageSet  bool      `json:"image_set"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublishCourseUpdated encodes the event and publishes it on behalf of userID.
func PublishCourseUpdated(ctx context.Context, pub Publisher, userID string, evt CourseUpdated) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", TopicCourseUpdated, err)
	}
	return pub.Publish(ctx, Message{
		Topic:   TopicCourseUpdated,
		UserID:  userID,
		Payload: payload,
	})
}

// Audit logs every course change. It runs until ctx is canceled.
func Audit(ctx context.Context, sub Subscriber, logger *slog.Logger) error {
	return sub.Subscribe(ctx, TopicCourseUpdated, func(ctx context.Context, msg Message) error {
		var evt CourseUpdated
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("failed to decode %s: %w", msg.Topic, err)
		}
		logger.Info("Course updated",
			"course_id", evt.CourseID,
			"name", evt.Name,
			"state", evt.State,
			"image_set", evt.ImageSet,
			"user_id", msg.UserID)
		return nil
	})
}
