package filesvc

import "context"

// List возвращает имена файлов в каталоге; порядок не гарантируется.
func (s *Files) List(ctx context.Context) ([]string, error) {
	files, err := s.Storage.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	s.Log.WithField("count", len(names)).Debug("files listed")

	return names, nil
}
