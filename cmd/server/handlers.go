package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jophy-ye/hydrant/internal/termio"
	"github.com/jophy-ye/hydrant/pkg/model"
)

var terms []*model.Term

const (
	dayLayout   = "2006-01-02"
	stampLayout = "2006-01-02 15:04"
)

func handleGetTerms(ctx *gin.Context) {
	var allIDs []string = []string{}
	for _, t := range terms {
		allIDs = append(allIDs, t.URLName())
	}

	ctx.JSON(http.StatusOK, gin.H{
		"termIds": allIDs,
	})
}

func handleGetTermWithId(ctx *gin.Context) {
	term := termio.FindTerm(terms, ctx.Param("id"))
	if term == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"urlName":        term.URLName(),
		"niceName":       term.NiceName(),
		"catalogName":    term.CatalogName(),
		"fullRealYear":   term.FullRealYear(),
		"fullSchoolYear": term.FullSchoolYear(),
		"start":          term.Start.Format(dayLayout),
		"h1End":          term.H1End.Format(dayLayout),
		"h2Start":        term.H2Start.Format(dayLayout),
		"end":            term.End.Format(dayLayout),
	})
}

func handleGetSlotDates(ctx *gin.Context) {
	term := termio.FindTerm(terms, ctx.Param("id"))
	if term == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	n, err := strconv.Atoi(ctx.Param("slot"))
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	slot := model.FromSlotNumber(n)

	exDates := []string{}
	for _, d := range term.ExDatesFor(slot) {
		exDates = append(exDates, d.Format(stampLayout))
	}

	resp := gin.H{
		"slot":    int(slot),
		"day":     slot.DayString(),
		"time":    slot.TimeString(),
		"start":   term.StartDateFor(slot, false).Format(stampLayout),
		"startH2": term.StartDateFor(slot, true).Format(stampLayout),
		"end":     term.EndDateFor(slot, false).Format(stampLayout),
		"endH1":   term.EndDateFor(slot, true).Format(stampLayout),
		"exDates": exDates,
	}
	if d, ok := term.RDateFor(slot); ok {
		resp["rDate"] = d.Format(stampLayout)
	}

	ctx.JSON(http.StatusOK, resp)
}
