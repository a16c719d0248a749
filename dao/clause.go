package dao

import (
	"gorm.io/gorm/clause"
)

// orderByExpr 按表达式升序
func orderByExpr(expr clause.Expr) clause.OrderBy {
	return clause.OrderBy{Expression: expr}
}
