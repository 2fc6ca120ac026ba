package app

import (
	"staffdesk/internal/auth"
	"staffdesk/internal/authz"
	"staffdesk/internal/bootstrap"
	"staffdesk/internal/clockrecord"
	"staffdesk/internal/config"
	"staffdesk/internal/crud"
	"staffdesk/internal/employee"
	"staffdesk/internal/holiday"
	"staffdesk/internal/inventory"
	"staffdesk/internal/middleware"
	"staffdesk/internal/session"
	"staffdesk/internal/task"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	sessions *session.Manager,
	cfg *config.Config,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	inventoryRepo := crud.NewRepository[inventory.InventoryItem](db)
	taskRepo := crud.NewRepository[task.Task](db)
	clockRepo := clockrecord.NewRepository(db)
	holidayRepo := crud.NewRepository[holiday.HolidayRequest](db)

	// --- Services ---
	employeeService := crud.NewService(db, employeeRepo, employee.NewDescriptor(), logger)
	inventoryService := crud.NewService(db, inventoryRepo, inventory.NewDescriptor(), logger)
	taskService := crud.NewService(db, taskRepo, task.NewDescriptor(), logger)
	clockService := crud.NewService(db, clockRepo, clockrecord.NewDescriptor(), logger)
	holidayService := crud.NewService(db, holidayRepo, holiday.NewDescriptor(), logger)
	authService := auth.NewService(employeeRepo, sessions, logger)

	// --- Handlers ---
	audit := bootstrap.NewStdoutAuditLogger()
	authHandler := auth.NewHandler(authService, audit, cfg.Server.IsProduction(), logger)
	employeeHandler := crud.NewHandler(employeeService, "employee", "/employees/", logger)
	inventoryHandler := crud.NewHandler(inventoryService, "inventory_item", "/inventory/", logger)
	taskHandler := crud.NewHandler(taskService, "task", "/tasks/", logger)
	clockHandler := crud.NewHandler(clockService, "clock_record", "/clock_records/", logger)
	holidayHandler := crud.NewHandler(holidayService, "holiday_request", "/holiday_requests/", logger)
	workHoursHandler := clockrecord.NewWorkHoursHandler(clockRepo, logger)

	// --- Routes ---
	root := router.Group("/")
	{
		auth.RegisterRoutes(root, authHandler, sessions, enforcer)
		crud.RegisterRoutes(root, "employees", "employee", employeeHandler, sessions, enforcer, logger)
		crud.RegisterRoutes(root, "inventory", "inventory", inventoryHandler, sessions, enforcer, logger)
		crud.RegisterRoutes(root, "tasks", "task", taskHandler, sessions, enforcer, logger)
		crud.RegisterRoutes(root, "clock_records", "clock_record", clockHandler, sessions, enforcer, logger)
		crud.RegisterRoutes(root, "holiday_requests", "holiday_request", holidayHandler, sessions, enforcer, logger)
		clockrecord.RegisterWorkHoursRoutes(root, workHoursHandler, sessions, enforcer, logger)
	}

	return nil
}
