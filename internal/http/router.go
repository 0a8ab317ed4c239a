package http

import (
	"net/http"
	"strings"
)

type RouterConfig struct {
	Teachers    *TeacherHandler
	Groups      *GroupHandler
	Students    *StudentHandler
	Rooms       *RoomHandler
	Bookings    *BookingHandler
	Attendance  *AttendanceHandler
	Payments    *PaymentHandler
	Preferences *PreferencesHandler
	Middleware  []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Teachers != nil {
		mux.HandleFunc("/teachers", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Teachers.List(w, r)
			case http.MethodPost:
				cfg.Teachers.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/teachers/", func(w http.ResponseWriter, r *http.Request) {
			id, rest := splitResourcePath(r.URL.Path, "/teachers/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithTeacherID(r.Context(), id))
			switch rest {
			case "":
				switch r.Method {
				case http.MethodGet:
					cfg.Teachers.Get(w, r)
				case http.MethodPut:
					cfg.Teachers.Update(w, r)
				case http.MethodDelete:
					cfg.Teachers.Delete(w, r)
				default:
					methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
				}
			case "groups":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Teachers.Groups(w, r)
			default:
				http.NotFound(w, r)
			}
		})
	}

	if cfg.Groups != nil {
		mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Groups.List(w, r)
			case http.MethodPost:
				cfg.Groups.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/groups/", func(w http.ResponseWriter, r *http.Request) {
			id, rest := splitResourcePath(r.URL.Path, "/groups/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithGroupID(r.Context(), id))
			switch rest {
			case "":
				switch r.Method {
				case http.MethodGet:
					cfg.Groups.Get(w, r)
				case http.MethodPut:
					cfg.Groups.Update(w, r)
				case http.MethodDelete:
					cfg.Groups.Delete(w, r)
				default:
					methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
				}
			case "students":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Groups.Students(w, r)
			case "attendance":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Groups.Attendance(w, r)
			case "payments":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Groups.Payments(w, r)
			case "payments/generate":
				if r.Method != http.MethodPost {
					methodNotAllowed(w, http.MethodPost)
					return
				}
				cfg.Groups.GeneratePayments(w, r)
			case "timetable":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Groups.Timetable(w, r)
			default:
				http.NotFound(w, r)
			}
		})
	}

	if cfg.Students != nil {
		mux.HandleFunc("/students", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Students.List(w, r)
			case http.MethodPost:
				cfg.Students.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/students/", func(w http.ResponseWriter, r *http.Request) {
			id, rest := splitResourcePath(r.URL.Path, "/students/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithStudentID(r.Context(), id))
			switch rest {
			case "":
				switch r.Method {
				case http.MethodGet:
					cfg.Students.Get(w, r)
				case http.MethodPut:
					cfg.Students.Update(w, r)
				case http.MethodDelete:
					cfg.Students.Delete(w, r)
				default:
					methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
				}
			case "payments":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Students.Payments(w, r)
			default:
				http.NotFound(w, r)
			}
		})
	}

	if cfg.Rooms != nil {
		mux.HandleFunc("/classrooms", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Rooms.List(w, r)
			case http.MethodPost:
				cfg.Rooms.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/classrooms/", func(w http.ResponseWriter, r *http.Request) {
			id, rest := splitResourcePath(r.URL.Path, "/classrooms/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithRoomID(r.Context(), id))
			switch rest {
			case "":
				switch r.Method {
				case http.MethodGet:
					cfg.Rooms.Get(w, r)
				case http.MethodPut:
					cfg.Rooms.Update(w, r)
				case http.MethodDelete:
					cfg.Rooms.Delete(w, r)
				default:
					methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
				}
			case "bookings":
				if r.Method != http.MethodGet {
					methodNotAllowed(w, http.MethodGet)
					return
				}
				cfg.Rooms.Bookings(w, r)
			default:
				http.NotFound(w, r)
			}
		})
	}

	if cfg.Bookings != nil {
		mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Bookings.List(w, r)
			case http.MethodPost:
				cfg.Bookings.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/bookings/", func(w http.ResponseWriter, r *http.Request) {
			id, rest := splitResourcePath(r.URL.Path, "/bookings/")
			if id == "" || rest != "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithBookingID(r.Context(), id))
			switch r.Method {
			case http.MethodGet:
				cfg.Bookings.Get(w, r)
			case http.MethodPut:
				cfg.Bookings.Update(w, r)
			case http.MethodDelete:
				cfg.Bookings.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
			}
		})
	}

	if cfg.Attendance != nil {
		mux.HandleFunc("/attendance", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Attendance.List(w, r)
			case http.MethodPost:
				cfg.Attendance.Record(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
	}

	if cfg.Payments != nil {
		mux.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Payments.List(w, r)
		})
		mux.HandleFunc("/payments/", func(w http.ResponseWriter, r *http.Request) {
			id, rest := splitResourcePath(r.URL.Path, "/payments/")
			if id == "" || rest != "status" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodPut {
				methodNotAllowed(w, http.MethodPut)
				return
			}
			r = r.WithContext(ContextWithPaymentID(r.Context(), id))
			cfg.Payments.UpdateStatus(w, r)
		})
	}

	if cfg.Preferences != nil {
		mux.HandleFunc("/preferences", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Preferences.Get(w, r)
			case http.MethodPut:
				cfg.Preferences.Update(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPut)
			}
		})
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

// splitResourcePath separates "/prefix/{id}" and "/prefix/{id}/rest" into
// the identifier and the remaining subpath.
func splitResourcePath(path, prefix string) (id, rest string) {
	trimmed := strings.TrimPrefix(path, prefix)
	if trimmed == "" {
		return "", ""
	}
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		return trimmed[:idx], strings.TrimSuffix(trimmed[idx+1:], "/")
	}
	return trimmed, ""
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
