package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jophy-ye/hydrant/internal/termio"
)

const (
	TermsFile    = "./res/terms.csv"
	HolidaysFile = "./res/holidays.csv"
)

func main() {
	var failed bool
	var report string
	terms, failed, report = termio.LoadTerms(TermsFile, HolidaysFile, ';')
	if failed {
		fmt.Println(report)
		return
	}

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/terms", handleGetTerms)
	r.GET("/terms/:id", handleGetTermWithId)
	r.GET("/terms/:id/slots/:slot", handleGetSlotDates)

	r.Run(":3001")
}
