package loader

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jusunglee/metro-go/internal/models"
)

const (
	snapshotKind    = "metro.stations"
	snapshotVersion = 1
)

// WriteSnapshot encodes rows as a protobuf Struct. Output is deterministic
// for a given table.
func WriteSnapshot(w io.Writer, rows []models.StationRow) error {
	if err := Validate(rows); err != nil {
		return err
	}

	list := make([]interface{}, len(rows))
	for i, row := range rows {
		list[i] = map[string]interface{}{
			"station": row.Station,
			"line":    row.Line,
			"lat":     row.Lat,
			"lon":     row.Lon,
		}
	}

	s, err := structpb.NewStruct(map[string]interface{}{
		"kind":    snapshotKind,
		"version": snapshotVersion,
		"rows":    list,
	})
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a table written by WriteSnapshot
func ReadSnapshot(r io.Reader) ([]models.StationRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	if kind := s.GetFields()["kind"].GetStringValue(); kind != snapshotKind {
		return nil, fmt.Errorf("%w: snapshot kind %q", ErrUnsupportedFormat, kind)
	}
	if v := int(s.GetFields()["version"].GetNumberValue()); v != snapshotVersion {
		return nil, fmt.Errorf("%w: snapshot version %d", ErrUnsupportedFormat, v)
	}

	values := s.GetFields()["rows"].GetListValue().GetValues()
	rows := make([]models.StationRow, 0, len(values))
	for n, v := range values {
		fields := v.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("%w: row %d: not an object", ErrInvalidRow, n+1)
		}
		rows = append(rows, models.StationRow{
			Station: fields["station"].GetStringValue(),
			Line:    fields["line"].GetStringValue(),
			Lat:     fields["lat"].GetNumberValue(),
			Lon:     fields["lon"].GetNumberValue(),
		})
	}

	if err := Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
