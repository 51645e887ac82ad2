package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// RowStore is the slice of the Sheets API the post store depends on: a
// ranged read of string cells, a row append, a bounded-range write and a
// row-span delete.
type RowStore interface {
	GetRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	AppendRow(ctx context.Context, spreadsheetID, writeRange string, row []string) error
	UpdateRow(ctx context.Context, spreadsheetID, writeRange string, row []string) error
	DeleteRows(ctx context.Context, spreadsheetID string, startIndex, endIndex int64) error
}

type Client struct {
	svc *gsheets.Service
}

// NewClient builds a Sheets client authenticated as a service account.
// privateKey may carry literal "\n" sequences when it comes out of an env
// file; they are unescaped here.
func NewClient(ctx context.Context, email, privateKey string) (*Client, error) {
	conf := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{gsheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("error creating sheets service: %w", err)
	}

	return &Client{svc: svc}, nil
}

func (c *Client) GetRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, 0, len(r))
		for _, cell := range r {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) AppendRow(ctx context.Context, spreadsheetID, writeRange string, row []string) error {
	body := &gsheets.ValueRange{Values: [][]interface{}{toCells(row)}}

	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, writeRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (c *Client) UpdateRow(ctx context.Context, spreadsheetID, writeRange string, row []string) error {
	body := &gsheets.ValueRange{Values: [][]interface{}{toCells(row)}}

	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// DeleteRows removes the half-open row span [startIndex, endIndex) from the
// first sheet of the spreadsheet. Rows below the span shift up.
func (c *Client) DeleteRows(ctx context.Context, spreadsheetID string, startIndex, endIndex int64) error {
	gid, err := c.firstSheetID(ctx, spreadsheetID)
	if err != nil {
		return err
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{
			{
				DeleteDimension: &gsheets.DeleteDimensionRequest{
					Range: &gsheets.DimensionRange{
						SheetId:    gid,
						Dimension:  "ROWS",
						StartIndex: startIndex,
						EndIndex:   endIndex,
					},
				},
			},
		},
	}

	_, err = c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (c *Client) firstSheetID(ctx context.Context, spreadsheetID string) (int64, error) {
	spreadsheet, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.sheetId").
		Context(ctx).
		Do()
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return 0, fmt.Errorf("spreadsheet %s has no sheets", spreadsheetID)
	}
	return spreadsheet.Sheets[0].Properties.SheetId, nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
