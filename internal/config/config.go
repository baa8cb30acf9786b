package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
// Чувствительные значения (пароль БД, admin token) можно переопределить
// переменными окружения CALENDAR_DB_PASSWORD и CALENDAR_ADMIN_TOKEN
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Auth     Auth     `toml:"auth"`
	Schedule Schedule `toml:"schedule"`
	Booking  Booking  `toml:"booking"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Auth настройки аутентификации админских операций
// Проверка сводится к сравнению заголовка X-Admin-Token с токеном
type Auth struct {
	AdminToken string `toml:"admin_token"`
}

// Schedule настройки рабочего календаря
type Schedule struct {
	WorkDays         []int `toml:"work_days"` // 0=Sunday ... 6=Saturday
	OpenHour         int   `toml:"open_hour"`
	CloseHour        int   `toml:"close_hour"`
	LunchStartHour   int   `toml:"lunch_start_hour"`
	LunchStartMinute int   `toml:"lunch_start_minute"`
	LunchEndMinute   int   `toml:"lunch_end_minute"`
}

// WorkSchedule конвертирует секцию конфигурации в domain.WorkSchedule
// Пустая секция дает расписание по умолчанию
func (s Schedule) WorkSchedule() domain.WorkSchedule {
	if len(s.WorkDays) == 0 && s.OpenHour == 0 && s.CloseHour == 0 {
		return domain.DefaultWorkSchedule()
	}

	days := make([]time.Weekday, 0, len(s.WorkDays))
	for _, d := range s.WorkDays {
		days = append(days, time.Weekday(d))
	}

	return domain.WorkSchedule{
		WorkDays:         days,
		OpenHour:         s.OpenHour,
		CloseHour:        s.CloseHour,
		LunchStartHour:   s.LunchStartHour,
		LunchStartMinute: s.LunchStartMinute,
		LunchEndMinute:   s.LunchEndMinute,
	}
}

// Booking настройки бронирования
type Booking struct {
	SlotGranularityMinutes int `toml:"slot_granularity_minutes"`
	LeadTimeHours          int `toml:"lead_time_hours"`
}

// Load загружает конфигурацию из TOML файла и применяет env-переопределения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if password := os.Getenv("CALENDAR_DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if token := os.Getenv("CALENDAR_ADMIN_TOKEN"); token != "" {
		cfg.Auth.AdminToken = token
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: Logs{
			Level: "info",
		},
		Metrics: Metrics{
			Path:        "/metrics",
			ServiceName: "calendar-service",
		},
		Booking: Booking{
			SlotGranularityMinutes: domain.DefaultSlotGranularityMinutes,
			LeadTimeHours:          domain.DefaultLeadTimeHours,
		},
	}
}

func (c *Config) validate() error {
	if err := c.Schedule.WorkSchedule().Validate(); err != nil {
		return fmt.Errorf("config: invalid schedule: %w", err)
	}

	g := c.Booking.SlotGranularityMinutes
	if g < domain.MinSlotGranularityMinutes || g > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("config: slot_granularity_minutes must be between %d and %d, got %d",
			domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes, g)
	}

	lt := c.Booking.LeadTimeHours
	if lt < domain.MinLeadTimeHours || lt > domain.MaxLeadTimeHours {
		return fmt.Errorf("config: lead_time_hours must be between %d and %d, got %d",
			domain.MinLeadTimeHours, domain.MaxLeadTimeHours, lt)
	}

	return nil
}
