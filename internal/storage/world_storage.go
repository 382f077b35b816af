package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
)

// ErrNotReady хранилище закрыто
var ErrNotReady = errors.New("storage: хранилище не готово")

const (
	blockKeyPrefix = "block:"
	nextIDKey      = "meta:next_building_id"
)

// GridStorage хранит блоки карты и счётчик ID зданий в BadgerDB.
// Блоки сериализуются в JSON и сжимаются zstd.
type GridStorage struct {
	db      *badger.DB
	mutex   sync.RWMutex
	isReady bool

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewGridStorage открывает хранилище в каталоге dataPath/world
func NewGridStorage(dataPath string) (*GridStorage, error) {
	opts := badger.DefaultOptions(filepath.Join(dataPath, "world"))
	opts.Logger = nil // Отключаем логирование BadgerDB
	return NewGridStorageWithOptions(opts)
}

// NewGridStorageWithOptions открывает хранилище с готовыми настройками BadgerDB
func NewGridStorageWithOptions(opts badger.Options) (*GridStorage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd-кодер: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd-декодер: %w", err)
	}

	return &GridStorage{
		db:      db,
		isReady: true,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Close закрывает хранилище данных
func (gs *GridStorage) Close() error {
	gs.mutex.Lock()
	defer gs.mutex.Unlock()

	if !gs.isReady {
		return nil
	}

	gs.isReady = false
	gs.encoder.Close()
	gs.decoder.Close()
	return gs.db.Close()
}

func blockKey(pos vec.Vec3) []byte {
	return []byte(fmt.Sprintf("%s%d:%d:%d", blockKeyPrefix, pos.X, pos.Y, pos.Z))
}

// terrainOnly копия блока без пометок зданий. Записи зданий не сохраняются,
// поэтому их занятость и пометки склада после загрузки никому бы не принадлежали.
func terrainOnly(b *world.MapBlock) *world.MapBlock {
	c := *b
	for x := range c.Occupancy {
		for y := range c.Occupancy[x] {
			c.Occupancy[x][y].Building = building.OccNone
			c.Designation[x][y].Pile = false
		}
	}
	return &c
}

func (gs *GridStorage) encodeBlock(b *world.MapBlock) ([]byte, error) {
	data, err := json.Marshal(terrainOnly(b))
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации блока %v: %w", b.Pos, err)
	}
	return gs.encoder.EncodeAll(data, nil), nil
}

func (gs *GridStorage) decodeBlock(val []byte) (*world.MapBlock, error) {
	data, err := gs.decoder.DecodeAll(val, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки блока: %w", err)
	}
	var b world.MapBlock
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("ошибка десериализации блока: %w", err)
	}
	return &b, nil
}

// SaveBlock сохраняет один блок карты
func (gs *GridStorage) SaveBlock(b *world.MapBlock) error {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()

	if !gs.isReady {
		return ErrNotReady
	}

	data, err := gs.encodeBlock(b)
	if err != nil {
		return err
	}

	err = gs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blockKey(b.Pos), data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// LoadBlock загружает блок по его координатам. nil без ошибки - блока нет.
func (gs *GridStorage) LoadBlock(pos vec.Vec3) (*world.MapBlock, error) {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()

	if !gs.isReady {
		return nil, ErrNotReady
	}

	var data []byte
	err := gs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blockKey(pos))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	return gs.decodeBlock(data)
}

// SaveGrid сохраняет все блоки сетки одной пачкой записей
func (gs *GridStorage) SaveGrid(g *world.Grid) error {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()

	if !gs.isReady {
		return ErrNotReady
	}

	wb := gs.db.NewWriteBatch()
	defer wb.Cancel()

	for _, b := range g.Blocks() {
		data, err := gs.encodeBlock(b)
		if err != nil {
			return err
		}
		if err := wb.Set(blockKey(b.Pos), data); err != nil {
			return fmt.Errorf("ошибка записи блока %v: %w", b.Pos, err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("ошибка сохранения сетки в BadgerDB: %w", err)
	}
	return nil
}

// LoadGrid собирает сетку из всех сохранённых блоков
func (gs *GridStorage) LoadGrid() (*world.Grid, error) {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()

	if !gs.isReady {
		return nil, ErrNotReady
	}

	g := world.NewGrid()
	err := gs.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(blockKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			b, err := gs.decodeBlock(val)
			if err != nil {
				return fmt.Errorf("ключ %s: %w", it.Item().Key(), err)
			}
			g.AddBlock(b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// SaveNextBuildingID запоминает ID, который будет выдан следующему зданию
func (gs *GridStorage) SaveNextBuildingID(id int32) error {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()

	if !gs.isReady {
		return ErrNotReady
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(id))
	return gs.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(nextIDKey), buf)
	})
}

// LoadNextBuildingID возвращает сохранённый счётчик ID; false - мир ещё не сохранялся
func (gs *GridStorage) LoadNextBuildingID() (int32, bool, error) {
	gs.mutex.RLock()
	defer gs.mutex.RUnlock()

	if !gs.isReady {
		return 0, false, ErrNotReady
	}

	var id int32
	err := gs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(nextIDKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 4 {
				return fmt.Errorf("некорректная длина счётчика: %d", len(val))
			}
			id = int32(binary.BigEndian.Uint32(val))
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("ошибка чтения счётчика ID: %w", err)
	}
	return id, true, nil
}

// SaveWorld сохраняет рельеф мира и счётчик ID зданий
func (gs *GridStorage) SaveWorld(w *world.World) error {
	if err := gs.SaveGrid(w.Grid); err != nil {
		return err
	}
	if next, ok := w.PeekBuildingID(); ok {
		return gs.SaveNextBuildingID(next)
	}
	return nil
}
