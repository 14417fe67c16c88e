package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
)

// worldExportData bundles everything that goes into a dossier
type worldExportData struct {
	Locations  []models.Location
	Characters []models.Character
	Factions   []models.Faction
}

func loadWorldExport(worldID uint) (*worldExportData, error) {
	data := &worldExportData{}
	if err := config.DB.Where("world_id = ?", worldID).
		Order("name ASC").Find(&data.Locations).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Where("world_id = ?", worldID).
		Preload("CharacterType").
		Preload("Faction").
		Order("name ASC").Find(&data.Characters).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Where("world_id = ?", worldID).
		Preload("Members").
		Order("influence DESC").Find(&data.Factions).Error; err != nil {
		return nil, err
	}
	return data, nil
}

func deathYearLabel(ch models.Character) string {
	if ch.Alive {
		return "-"
	}
	return fmt.Sprintf("%d", ch.DeathYear)
}

func factionLabel(ch models.Character) string {
	if ch.Faction != nil {
		return ch.Faction.Name
	}
	return "Unaligned"
}

func factionStatus(f models.Faction) string {
	if f.Dissolved {
		return "Dissolved"
	}
	return "Active"
}

// boldCell adds a bold cell to a row
func boldCell(row *xlsx.Row, text string) {
	cell := row.AddCell()
	cell.SetString(text)
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	cell.SetStyle(style)
}

// ExportWorldExcel downloads a world dossier as an Excel workbook
func ExportWorldExcel(c *gin.Context) {
	utils.LogInfo("ExportWorldExcel called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	data, err := loadWorldExport(world.ID)
	if err != nil {
		utils.LogError("Failed to fetch world content: %v", err)
		utils.InternalServerError(c, "Failed to fetch world content", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d locations, %d characters, %d factions for Excel dossier",
		len(data.Locations), len(data.Characters), len(data.Factions))

	totalPopulation := 0
	for _, location := range data.Locations {
		totalPopulation += location.Population
	}
	livingCharacters := 0
	for _, character := range data.Characters {
		if character.Alive {
			livingCharacters++
		}
	}

	// --- Excel Generation ---
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("World Dossier")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}
	utils.LogDebug("Created Excel sheet for world dossier")

	// World details
	titleRow := sheet.AddRow()
	boldCell(titleRow, "WORLDHISTORYSIM - World Dossier")
	detailRow := sheet.AddRow()
	detailRow.AddCell().SetString("World: " + world.Name)
	detailRow = sheet.AddRow()
	detailRow.AddCell().SetString("Era: " + world.Era)
	detailRow = sheet.AddRow()
	detailRow.AddCell().SetString(fmt.Sprintf("Years: %d to %d", world.StartYear, world.CurrentYear))
	detailRow = sheet.AddRow()
	detailRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	// Locations section
	boldCell(sheet.AddRow(), "Locations")
	locationHeaders := []string{"ID", "Name", "Kind", "Population", "X", "Y"}
	headerRow := sheet.AddRow()
	for _, h := range locationHeaders {
		boldCell(headerRow, h)
	}
	for _, location := range data.Locations {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(location.ID))
		row.AddCell().SetString(location.Name)
		row.AddCell().SetString(location.Kind)
		row.AddCell().SetInt(location.Population)
		row.AddCell().SetFloat(location.X)
		row.AddCell().SetFloat(location.Y)
	}
	sheet.AddRow() // spacing

	// Characters section
	boldCell(sheet.AddRow(), "Characters")
	characterHeaders := []string{"ID", "Name", "Type", "Faction", "Birth Year", "Death Year"}
	headerRow = sheet.AddRow()
	for _, h := range characterHeaders {
		boldCell(headerRow, h)
	}
	for _, character := range data.Characters {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(character.ID))
		row.AddCell().SetString(character.Name)
		row.AddCell().SetString(character.CharacterType.Name)
		row.AddCell().SetString(factionLabel(character))
		row.AddCell().SetInt(character.BirthYear)
		row.AddCell().SetString(deathYearLabel(character))
	}
	sheet.AddRow() // spacing

	// Factions section
	boldCell(sheet.AddRow(), "Factions")
	factionHeaders := []string{"ID", "Name", "Influence", "Founded", "Members", "Status"}
	headerRow = sheet.AddRow()
	for _, h := range factionHeaders {
		boldCell(headerRow, h)
	}
	for _, faction := range data.Factions {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(faction.ID))
		row.AddCell().SetString(faction.Name)
		row.AddCell().SetInt(faction.Influence)
		row.AddCell().SetInt(faction.FoundedYear)
		row.AddCell().SetInt(len(faction.Members))
		row.AddCell().SetString(factionStatus(faction))
	}
	sheet.AddRow() // spacing

	// --- Summary Section ---
	boldCell(sheet.AddRow(), "Summary")
	summaryData := [][]string{
		{"Locations", fmt.Sprintf("%d", len(data.Locations))},
		{"Characters", fmt.Sprintf("%d", len(data.Characters))},
		{"Living Characters", fmt.Sprintf("%d", livingCharacters)},
		{"Factions", fmt.Sprintf("%d", len(data.Factions))},
		{"Total Population", fmt.Sprintf("%d", totalPopulation)},
	}
	for _, entry := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(entry[0])
		row.AddCell().SetString(entry[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=world_%d_dossier.xlsx", world.ID))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel dossier for world %d", world.ID)
}

// ExportWorldPDF downloads a world dossier as a PDF
func ExportWorldPDF(c *gin.Context) {
	utils.LogInfo("ExportWorldPDF called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	data, err := loadWorldExport(world.ID)
	if err != nil {
		utils.LogError("Failed to fetch world content: %v", err)
		utils.InternalServerError(c, "Failed to fetch world content", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d locations, %d characters, %d factions for PDF dossier",
		len(data.Locations), len(data.Characters), len(data.Factions))

	totalPopulation := 0
	for _, location := range data.Locations {
		totalPopulation += location.Population
	}
	livingCharacters := 0
	for _, character := range data.Characters {
		if character.Alive {
			livingCharacters++
		}
	}

	// --- PDF Generation ---
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Add title
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "WORLDHISTORYSIM - World Dossier")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "World: "+world.Name)
	pdf.Ln(6)
	pdf.Cell(0, 8, "Era: "+world.Era)
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Years: %d to %d", world.StartYear, world.CurrentYear))
	pdf.Ln(6)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	// Locations table
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Locations")
	pdf.Ln(8)
	locationHeaders := []string{"ID", "Name", "Kind", "Population", "X", "Y"}
	locationWidths := []float64{15, 80, 35, 30, 25, 25}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range locationHeaders {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(locationWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, location := range data.Locations {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(locationWidths[0], 8, fmt.Sprintf("%d", location.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(locationWidths[1], 8, location.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(locationWidths[2], 8, location.Kind, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(locationWidths[3], 8, fmt.Sprintf("%d", location.Population), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(locationWidths[4], 8, fmt.Sprintf("%.1f", location.X), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(locationWidths[5], 8, fmt.Sprintf("%.1f", location.Y), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	// Characters table
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Characters")
	pdf.Ln(8)
	characterHeaders := []string{"ID", "Name", "Type", "Faction", "Birth", "Death"}
	characterWidths := []float64{15, 70, 40, 60, 25, 25}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range characterHeaders {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(characterWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill = false
	for _, character := range data.Characters {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(characterWidths[0], 8, fmt.Sprintf("%d", character.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(characterWidths[1], 8, character.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(characterWidths[2], 8, character.CharacterType.Name, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(characterWidths[3], 8, factionLabel(character), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(characterWidths[4], 8, fmt.Sprintf("%d", character.BirthYear), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(characterWidths[5], 8, deathYearLabel(character), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	// Factions table
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Factions")
	pdf.Ln(8)
	factionHeaders := []string{"ID", "Name", "Influence", "Founded", "Members", "Status"}
	factionWidths := []float64{15, 80, 30, 30, 30, 30}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range factionHeaders {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(factionWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill = false
	for _, faction := range data.Factions {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(factionWidths[0], 8, fmt.Sprintf("%d", faction.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(factionWidths[1], 8, faction.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(factionWidths[2], 8, fmt.Sprintf("%d", faction.Influence), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(factionWidths[3], 8, fmt.Sprintf("%d", faction.FoundedYear), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(factionWidths[4], 8, fmt.Sprintf("%d", len(faction.Members)), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(factionWidths[5], 8, factionStatus(faction), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	// --- Summary Section ---
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	pdf.SetFillColor(255, 255, 255)
	pdf.CellFormat(50, 8, "Locations", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", len(data.Locations)), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Characters", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", len(data.Characters)), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Living Characters", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", livingCharacters), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Factions", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", len(data.Factions)), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Population", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", totalPopulation), "1", 0, "R", false, 0, "")

	// Set headers and write file
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=world_%d_dossier.pdf", world.ID))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated PDF dossier for world %d", world.ID)
}

// ShareWorldRequest represents the share world request body
type ShareWorldRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ShareWorldByEmail mails a dossier summary to a collaborator
func ShareWorldByEmail(c *gin.Context) {
	utils.LogInfo("ShareWorldByEmail called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var req ShareWorldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", "Please provide a valid email address")
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Share attempt failed - Invalid email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	data, err := loadWorldExport(world.ID)
	if err != nil {
		utils.LogError("Failed to fetch world content: %v", err)
		utils.InternalServerError(c, "Failed to fetch world content", err.Error())
		return
	}

	userVal, _ := c.Get("user")
	user := userVal.(models.User)
	sender := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if sender == "" {
		sender = user.Username
	}

	summary := fmt.Sprintf("Era: %s\nYears: %d to %d\nLocations: %d\nCharacters: %d\nFactions: %d",
		world.Era, world.StartYear, world.CurrentYear,
		len(data.Locations), len(data.Characters), len(data.Factions))

	if err := utils.SendWorldShareEmail(req.Email, world.Name, sender, summary); err != nil {
		utils.LogError("Failed to send share email to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send share email", err.Error())
		return
	}

	utils.LogInfo("World %d summary shared with %s", world.ID, req.Email)
	utils.Success(c, "World summary sent successfully", gin.H{
		"recipient": req.Email,
	})
}
