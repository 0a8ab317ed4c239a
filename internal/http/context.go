package http

import "context"

type contextKey string

const (
	teacherIDContextKey contextKey = "teacher_id"
	groupIDContextKey   contextKey = "group_id"
	studentIDContextKey contextKey = "student_id"
	roomIDContextKey    contextKey = "room_id"
	bookingIDContextKey contextKey = "booking_id"
	paymentIDContextKey contextKey = "payment_id"
)

// ContextWithTeacherID injects the teacher identifier resolved from the request path.
func ContextWithTeacherID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, teacherIDContextKey, id)
}

// TeacherIDFromContext extracts a teacher identifier previously associated with the context.
func TeacherIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(teacherIDContextKey).(string)
	return id, ok
}

// ContextWithGroupID injects the group identifier resolved from the request path.
func ContextWithGroupID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, groupIDContextKey, id)
}

// GroupIDFromContext extracts a group identifier previously associated with the context.
func GroupIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(groupIDContextKey).(string)
	return id, ok
}

// ContextWithStudentID injects the student identifier resolved from the request path.
func ContextWithStudentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, studentIDContextKey, id)
}

// StudentIDFromContext extracts a student identifier previously associated with the context.
func StudentIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(studentIDContextKey).(string)
	return id, ok
}

// ContextWithRoomID injects the classroom identifier resolved from the request path.
func ContextWithRoomID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, roomIDContextKey, id)
}

// RoomIDFromContext extracts a classroom identifier previously associated with the context.
func RoomIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(roomIDContextKey).(string)
	return id, ok
}

// ContextWithBookingID injects the booking identifier resolved from the request path.
func ContextWithBookingID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, bookingIDContextKey, id)
}

// BookingIDFromContext extracts a booking identifier previously associated with the context.
func BookingIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(bookingIDContextKey).(string)
	return id, ok
}

// ContextWithPaymentID injects the payment identifier resolved from the request path.
func ContextWithPaymentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, paymentIDContextKey, id)
}

// PaymentIDFromContext extracts a payment identifier previously associated with the context.
func PaymentIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(paymentIDContextKey).(string)
	return id, ok
}
