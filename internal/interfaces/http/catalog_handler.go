package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

// CatalogHandler sirve los tres catálogos de referencia (sucursales, modelos
// de auto y medios publicitarios) parametrizado por el tipo de catálogo; los
// tres comparten el mismo comportamiento de alta en lote, listado y baja.
type CatalogHandler struct {
	uc   *usecase.CatalogUseCase
	kind entity.CatalogKind
	// label nombre legible de la entidad para los mensajes ("sucursal", ...).
	label string
}

// NewCatalogHandler construye un handler atado a un tipo de catálogo.
func NewCatalogHandler(uc *usecase.CatalogUseCase, kind entity.CatalogKind, label string) *CatalogHandler {
	return &CatalogHandler{uc: uc, kind: kind, label: label}
}

// Create acepta un único {name} o la colección bajo la clave plural de la
// entidad; crea todo lo válido y reporta cuántas entradas se descartaron.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	out, err := h.uc.BulkCreate(h.kind, in.Names(h.kind))
	if err != nil {
		return respondError(c, err)
	}
	msg := h.label + " registrado(s)"
	if out.Skipped > 0 {
		msg = msg + "; entradas descartadas por inválidas: " + strconv.Itoa(out.Skipped)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, msg))
}

// List devuelve las entradas activas del catálogo.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(h.kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(items, ""))
}

// Delete baja lógica (o física si isForced) de una entrada del catálogo.
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(h.kind, id, parseForced(c), GetUserID(c), parseRemovalReason(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(nil, h.label+" eliminado"))
}
