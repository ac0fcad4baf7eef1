package database

import (
	"github.com/n2code/vuidcheck/internal/record"
	"go.uber.org/zap"
)

type database struct {
	records map[record.Identifier]record.Record
	file    string //absolute, system-native path of the loaded file
	log     *zap.Logger
}
