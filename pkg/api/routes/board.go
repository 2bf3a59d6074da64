package routes

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/bridgetimes/pkg/crossing"
)

var boardTemplate = template.Must(template.New("board").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="60">
<title>Bridge Times</title>
</head>
<body>
<table>
<thead>
<tr><th>Bridge Time</th><th>Operator</th><th>Destination</th><th>Last Station</th><th>Departure Time</th><th>On Time?</th><th>Direction</th></tr>
</thead>
<tbody>
{{- range .Records}}
<tr><td>{{.BridgeTime}}</td><td>{{.Operator}}</td><td>{{.Destination}}</td><td>{{.LastStation}}</td><td>{{.DepartureTime}}</td><td>{{.OnTime}}</td><td>{{.Direction}}</td></tr>
{{- else}}
<tr><td colspan="7">No trains due to cross the bridge</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

func BoardPage(board BoardSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := board.ComputeCrossings(c.UserContext())
		if err != nil {
			return sendBoardError(c, err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

		return boardTemplate.Execute(c, struct {
			Records []crossing.Record
		}{
			Records: records,
		})
	}
}
