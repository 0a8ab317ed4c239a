// Package http provides HTTP handlers and middleware for the dashboard API.
//
// The router exposes the following endpoints:
//   - GET /teachers, POST /teachers, GET/PUT/DELETE /teachers/{id}, and
//     GET /teachers/{id}/groups for the teaching staff and their group
//     assignments.
//   - GET /groups, POST /groups, GET/PUT/DELETE /groups/{id}, plus the group
//     subresources GET /groups/{id}/students, GET /groups/{id}/attendance,
//     GET /groups/{id}/payments, POST /groups/{id}/payments/generate, and
//     GET /groups/{id}/timetable?from=&to= (defaults to the current week).
//   - GET /students, POST /students, GET/PUT/DELETE /students/{id}, and
//     GET /students/{id}/payments.
//   - GET /classrooms, POST /classrooms, GET/PUT/DELETE /classrooms/{id}, and
//     GET /classrooms/{id}/bookings?date= or ?from=&to=.
//   - GET /bookings (optionally ?from=&to= or ?date=&start=),
//     POST /bookings, GET/PUT/DELETE /bookings/{id}. Creating a booking in an
//     occupied room succeeds and returns conflict warnings alongside the
//     record.
//   - GET /attendance and POST /attendance; recording is an upsert keyed by
//     group and date.
//   - GET /payments and PUT /payments/{id}/status with body {"status": ...}.
//   - GET /preferences and PUT /preferences carrying the selected teacher and
//     calendar view mode.
//
// Request and response payloads reuse the snapshot JSON shape of the domain
// types; envelope and DTO definitions live alongside their handlers.
package http
