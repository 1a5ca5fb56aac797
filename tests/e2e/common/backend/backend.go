//go:build e2e

// Package backend is an in-memory stand-in for the studio platform REST API.
package backend

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"studio-agenda/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type Studio struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
}

type named struct {
	Nome string `json:"nome"`
}

type ClassSlot struct {
	ID             int       `json:"id"`
	Modalidade     named     `json:"modalidade"`
	Studio         Studio    `json:"studio"`
	Instrutor      string    `json:"instrutor_principal"`
	DataHoraInicio time.Time `json:"data_hora_inicio"`
	DuracaoMinutos int       `json:"duracao_minutos"`
	Capacidade     int       `json:"capacidade_maxima"`
	TotalInscritos int       `json:"total_inscritos"`
}

type Booking struct {
	ID             int       `json:"id"`
	Aula           ClassSlot `json:"aula"`
	StatusPresenca *string   `json:"status_presenca"`

	studentID string
}

type createBookingBody struct {
	Aula              int  `json:"aula"`
	EntrarListaEspera bool `json:"entrar_lista_espera"`
}

const statusCancelled = "CANCELADO"

// Server serves the subset of endpoints the agenda gateway calls.
type Server struct {
	*httptest.Server

	jwt *jwt.Service

	mu       sync.Mutex
	nextID   int
	studios  []Studio
	slots    map[int]*ClassSlot
	bookings []*Booking
	failing  bool
}

func New(jwtSecret string) *Server {
	s := &Server{
		jwt:    jwt.NewService(jwtSecret),
		nextID: 1000,
		slots:  map[int]*ClassSlot{},
	}

	router := gin.New()
	router.Use(s.failureSwitch)
	router.GET("/studios/", s.listStudios)
	router.GET("/agendamentos/aulas/", s.listClassSlots)
	router.GET("/agendamentos/aulas/:id/", s.getClassSlot)
	authed := router.Group("/agendamentos/aulas-alunos", s.requireStudent)
	authed.GET("/", s.listBookings)
	authed.POST("/", s.createBooking)
	authed.DELETE("/:id/", s.cancelBooking)

	s.Server = httptest.NewServer(router)
	return s
}

// Reset drops every seeded record.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studios = nil
	s.slots = map[int]*ClassSlot{}
	s.bookings = nil
	s.failing = false
}

// SetFailing makes every endpoint answer 503.
func (s *Server) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *Server) AddStudio(studio Studio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studios = append(s.studios, studio)
}

func (s *Server) AddClassSlot(slot ClassSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := slot
	s.slots[slot.ID] = &stored
}

// AddBooking seeds a booking for the student and returns its id.
func (s *Server) AddBooking(studentID string, classSlotID int, status *string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b := &Booking{ID: s.nextID, Aula: *s.slots[classSlotID], StatusPresenca: status, studentID: studentID}
	s.bookings = append(s.bookings, b)
	return b.ID
}

// BookingStatus returns the recorded attendance of a booking, or "" when unset.
func (s *Server) BookingStatus(bookingID int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == bookingID && b.StatusPresenca != nil {
			return *b.StatusPresenca
		}
	}
	return ""
}

func (s *Server) failureSwitch(c *gin.Context) {
	s.mu.Lock()
	failing := s.failing
	s.mu.Unlock()
	if failing {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"detail": "Serviço indisponível."})
		return
	}
	c.Next()
}

func (s *Server) requireStudent(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "As credenciais de autenticação não foram fornecidas."})
		return
	}
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token inválido."})
		return
	}
	c.Set("student_id", claims.StudentID())
	c.Next()
}

func (s *Server) listStudios(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.studios)
}

func (s *Server) listClassSlots(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := c.Query("data")
	studio := c.Query("studio")
	results := make([]ClassSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		if date != "" && slot.DataHoraInicio.Format("2006-01-02") != date {
			continue
		}
		if studio != "" && strconv.Itoa(slot.Studio.ID) != studio {
			continue
		}
		results = append(results, *slot)
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) getClassSlot(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := strconv.Atoi(c.Param("id"))
	slot, ok := s.slots[id]
	if err != nil || !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Não encontrado."})
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (s *Server) listBookings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	studentID := c.GetString("student_id")
	results := make([]Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.studentID == studentID {
			results = append(results, *b)
		}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) createBooking(c *gin.Context) {
	var body createBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"aula": []string{"Um número inteiro válido é necessário."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	studentID := c.GetString("student_id")
	slot, ok := s.slots[body.Aula]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"aula": []string{"Aula inexistente."}})
		return
	}
	for _, b := range s.bookings {
		if b.studentID == studentID && b.Aula.ID == slot.ID && (b.StatusPresenca == nil || *b.StatusPresenca != statusCancelled) {
			c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Aluno já inscrito nesta aula."}})
			return
		}
	}
	full := slot.TotalInscritos >= slot.Capacidade
	if full && !body.EntrarListaEspera {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Aula lotada."})
		return
	}
	if !full {
		slot.TotalInscritos++
	}

	s.nextID++
	b := &Booking{ID: s.nextID, Aula: *slot, studentID: studentID}
	s.bookings = append(s.bookings, b)
	c.JSON(http.StatusCreated, b)
}

func (s *Server) cancelBooking(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := strconv.Atoi(c.Param("id"))
	studentID := c.GetString("student_id")
	for _, b := range s.bookings {
		if b.ID != id || b.studentID != studentID {
			continue
		}
		cancelled := statusCancelled
		b.StatusPresenca = &cancelled
		if slot, ok := s.slots[b.Aula.ID]; ok && slot.TotalInscritos > 0 {
			slot.TotalInscritos--
		}
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Não encontrado."})
}
