package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// MySQLOption for MySQL options
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host         string        `mapstructure:"host"`
	Port         uint16        `mapstructure:"port"`
	Database     string        `mapstructure:"database"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	MaxLifetime  int           `mapstructure:"max_lifetime_seconds"`
	Options      []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) optionsString() string {
	var opts []string
	for _, o := range c.Options {
		key := url.QueryEscape(o.Key)
		value := url.QueryEscape(o.Value)
		opts = append(opts, key+"="+value)
	}
	return strings.Join(opts, "&")
}

// DSN returns data source name, parseTime is always enabled for scanning DATETIME columns
func (c MySQLConfig) DSN() string {
	optStr := c.optionsString()
	if !strings.Contains(optStr, "parseTime=") {
		if optStr != "" {
			optStr += "&"
		}
		optStr += "parseTime=true"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.Username, c.Password, c.Host, c.Port, c.Database, optStr)
}

// MigrateDSN is the url form used by golang-migrate
func (c MySQLConfig) MigrateDSN() string {
	return "mysql://" + c.DSN()
}

// MustConnect connects to database using sqlx
func (c MySQLConfig) MustConnect() *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	fmt.Fprintln(os.Stderr, "MaxOpenConns:", c.MaxOpenConns)
	fmt.Fprintln(os.Stderr, "MaxIdleConns:", c.MaxIdleConns)
	fmt.Fprintln(os.Stderr, "Options:", c.optionsString())

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	if c.MaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(c.MaxLifetime) * time.Second)
	}
	return db
}
